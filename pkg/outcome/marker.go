package outcome

// SuccessMarker labels a payload as the result of a successful operation.
type SuccessMarker[T any] struct {
	value T
}

// FailureMarker labels a payload as the descriptor of a failed operation.
type FailureMarker[E any] struct {
	value E
}

func MarkSuccess[T any](value T) SuccessMarker[T] {
	return SuccessMarker[T]{value: value}
}

func MarkFailure[E any](err E) FailureMarker[E] {
	return FailureMarker[E]{value: err}
}

// MarkSuccessSignal is the payload-less success marker.
func MarkSuccessSignal() SuccessMarker[Unit] {
	return SuccessMarker[Unit]{}
}

// MarkFailureSignal is the payload-less failure marker.
func MarkFailureSignal() FailureMarker[Unit] {
	return FailureMarker[Unit]{}
}

func (m SuccessMarker[T]) Payload() T {
	return m.value
}

func (m FailureMarker[E]) Payload() E {
	return m.value
}
