package domain

// Result is a two-variant outcome: success with a value, or failure with an
// error and its code. Exactly one variant holds; callers branch on IsOk
// before reading Value or Err.
type Result[T any] struct {
	ok      bool
	value   T
	message string
	err     error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// OkMsg wraps a successful value with a human-readable message.
func OkMsg[T any](value T, message string) Result[T] {
	return Result[T]{ok: true, value: value, message: message}
}

// Fail wraps a failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{ok: false, err: err}
}

// FailAs converts a failure of one value type into another, preserving the
// error. Panics on a success, which would discard a value.
func FailAs[T, U any](r Result[T]) Result[U] {
	if r.ok {
		panic("domain: FailAs on a successful result")
	}
	return Result[U]{ok: false, err: r.err}
}

// IsOk reports whether the result is the success variant.
func (r Result[T]) IsOk() bool { return r.ok }

// Value returns the success value, or the zero value on a failure.
func (r Result[T]) Value() T { return r.value }

// Message returns the optional success message.
func (r Result[T]) Message() string { return r.message }

// Err returns the failure error, or nil on a success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

// Code returns the failure's HTTP-like code, or 0 on a success.
func (r Result[T]) Code() int {
	if r.ok {
		return 0
	}
	return CodeOf(r.err)
}

// Unpack converts the result to Go's conventional pair form.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.Err()
}
