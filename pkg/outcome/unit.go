package outcome

// Unit is the payload of a side that carries no data.
type Unit = struct{}

// Fallible is an Outcome whose success carries nothing.
type Fallible[E any] = Outcome[Unit, E]

// Maybe is an Outcome whose failure carries nothing.
type Maybe[T any] = Outcome[T, Unit]

// Signal is an Outcome where neither side carries data.
type Signal = Outcome[Unit, Unit]

func Done[E any]() Fallible[E] {
	return FromSuccess[E](MarkSuccessSignal())
}

func Failed[T any]() Maybe[T] {
	return FromFailure[T](MarkFailureSignal())
}

func SignalSuccess() Signal {
	return FromSuccess[Unit](MarkSuccessSignal())
}

func SignalFailure() Signal {
	return FromFailure[Unit](MarkFailureSignal())
}

func isUnit(v any) bool {
	_, ok := v.(Unit)
	return ok
}
