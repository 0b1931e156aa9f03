// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-secure-stdlib/lambdautil/functional"
)

// Catch recovers a panic carrying an *Error and stores it in *errp. It must
// be deferred directly:
//
//	func load() (err error) {
//		defer unchecked.Catch(&err)
//		...
//	}
//
// If *errp already holds an error, both are kept in a multierror. Panics of
// any other kind are re-raised unchanged.
func Catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	if *errp != nil {
		*errp = multierror.Append(*errp, e)
		return
	}
	*errp = e
}

// Handle recovers a panic carrying an *Error and passes it to fn. It must be
// deferred directly. Panics of any other kind are re-raised unchanged.
func Handle(fn func(*Error)) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	fn(e)
}

// Checked runs fn and returns the *Error it panicked with, if any.
func Checked(fn func()) (err error) {
	defer Catch(&err)
	fn()
	return nil
}

// CheckedCall runs fn and returns its result, or the zero value and the
// *Error it panicked with.
func CheckedCall[R any](fn functional.Producer[R]) (_ R, err error) {
	defer Catch(&err)
	return fn(), nil
}

// LogHandler returns a function suitable for Handle that logs the error at
// error level.
func LogHandler(logger hclog.Logger) func(*Error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return func(e *Error) {
		logger.Error("unchecked error", "error", e, "cause", e.Cause())
	}
}
