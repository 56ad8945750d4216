package outcome

type Discriminated interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

type ValueProvider[T any] interface {
	// Value returns the success payload, panicking on any other outcome
	Value() T
	TryValue() (T, bool)
}

type ErrProvider[E any] interface {
	// Err returns the failure payload, panicking on any other outcome
	Err() E
	TryErr() (E, bool)
}

// Classified is implemented by Outcome; accept it where only the read side
// of an outcome is needed.
type Classified[T, E any] interface {
	Discriminated
	ValueProvider[T]
	ErrProvider[E]
	IsFailure() bool
}

var _ Classified[int, error] = Outcome[int, error]{}
