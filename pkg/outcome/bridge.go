package outcome

import "reflect"

// Of turns Go's (value, error) convention into an Outcome. A typed nil
// pointer stored in err counts as no error.
func Of[T any](value T, err error) Outcome[T, error] {
	if !isNil(err) {
		return FromFailure[T](MarkFailure(err))
	}
	return FromSuccess[error](MarkSuccess(value))
}

// Check is Of for operations that return only an error.
func Check(err error) Fallible[error] {
	if !isNil(err) {
		return FromFailure[Unit](MarkFailure(err))
	}
	return Done[error]()
}

// Unpack returns o as (value, nil) or (zero, err). It panics on an unset
// Outcome.
func Unpack[T any](o Outcome[T, error]) (T, error) {
	if o.IsFailure() {
		var zero T
		return zero, o.err
	}
	return o.Value(), nil
}

func isNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
