package outcome

type state uint8

const (
	unset state = iota
	succeeded
	failed
)

func (s state) String() string {
	switch s {
	case succeeded:
		return "success"
	case failed:
		return "failure"
	default:
		return "unset"
	}
}

// Outcome is either a success carrying T or a failure carrying E.
//
// Only FromSuccess, FromFailure and the helpers built on them produce a
// classified Outcome. The zero value is unset: it is neither a success nor a
// failure and every accessor panics on it.
type Outcome[T, E any] struct {
	value T // valid only when state is succeeded
	err   E // valid only when state is failed
	state state
}

// FromSuccess absorbs a success marker. E is listed first so callers can
// name it and let T be inferred: FromSuccess[string](MarkSuccess(42)).
func FromSuccess[E, T any](m SuccessMarker[T]) Outcome[T, E] {
	return Outcome[T, E]{
		value: m.value,
		state: succeeded,
	}
}

// FromFailure absorbs a failure marker: FromFailure[int](MarkFailure("bad")).
func FromFailure[T, E any](m FailureMarker[E]) Outcome[T, E] {
	return Outcome[T, E]{
		err:   m.value,
		state: failed,
	}
}

func Succeed[E, T any](value T) Outcome[T, E] {
	return FromSuccess[E](MarkSuccess(value))
}

func Fail[T, E any](err E) Outcome[T, E] {
	return FromFailure[T](MarkFailure(err))
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.state == succeeded
}

func (o Outcome[T, E]) IsFailure() bool {
	return o.state == failed
}

// IsEmpty reports whether o is the zero Outcome, which no constructor returns.
func (o Outcome[T, E]) IsEmpty() bool {
	return o.state == unset
}

// Value returns the success payload.
// It panics with a *MisuseError unless o is a success.
func (o Outcome[T, E]) Value() T {
	if o.state != succeeded {
		panic(misuse("Value", o.state))
	}
	return o.value
}

// Err returns the failure payload.
// It panics with a *MisuseError unless o is a failure.
func (o Outcome[T, E]) Err() E {
	if o.state != failed {
		panic(misuse("Err", o.state))
	}
	return o.err
}

// TryValue returns the success payload and true, or T's zero value and false.
func (o Outcome[T, E]) TryValue() (T, bool) {
	if o.state != succeeded {
		var zero T
		return zero, false
	}
	return o.value, true
}

// TryErr returns the failure payload and true, or E's zero value and false.
func (o Outcome[T, E]) TryErr() (E, bool) {
	if o.state != failed {
		var zero E
		return zero, false
	}
	return o.err, true
}

// Inspect calls onSuccess or onFailure with the matching payload.
// Nil callbacks are skipped. It panics on an unset Outcome.
func (o Outcome[T, E]) Inspect(onSuccess func(T), onFailure func(E)) {
	switch o.state {
	case succeeded:
		if onSuccess != nil {
			onSuccess(o.value)
		}
	case failed:
		if onFailure != nil {
			onFailure(o.err)
		}
	default:
		panic(misuse("Inspect", o.state))
	}
}

// Match reduces o to R through the handler of the side it holds.
// It panics on an unset Outcome.
func Match[T, E, R any](o Outcome[T, E],
	onSuccess func(value T) R,
	onFailure func(err E) R) R {

	switch o.state {
	case succeeded:
		return onSuccess(o.value)
	case failed:
		return onFailure(o.err)
	default:
		panic(misuse("Match", o.state))
	}
}
