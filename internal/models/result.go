package models

// Result holds either a value or an error from an asynchronous operation
type Result[T any] struct {
	Value T
	Err   error
}
