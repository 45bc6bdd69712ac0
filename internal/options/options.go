// Package options provides generic functional options for the emoji256 constructors.
package options

import "errors"

// Option configures a value of type T under construction, typically a pointer.
type Option[T any] func(T) error

// New returns fn as an Option. Use it for settings that validate their argument.
func New[T any](fn func(T) error) Option[T] {
	return fn
}

// NoError returns an Option for a setting that cannot be invalid.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs every option against target in order.
//
// A failing option does not stop the remaining ones, so a caller sees every invalid
// setting at once; the failures are returned joined. Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	var failed []error
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			failed = append(failed, err)
		}
	}

	return errors.Join(failed...)
}
