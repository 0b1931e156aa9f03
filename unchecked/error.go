// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package unchecked converts checked errors returned by closures into a
// single panicking error kind, and back again at a call tree's boundary.
package unchecked

import (
	"errors"

	"github.com/hashicorp/errwrap"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Error is raised, via panic, in place of a checked error returned from a
// Block or Procedure. Its cause is always the original error.
type Error struct {
	msg   string
	cause error
}

var _ errwrap.Wrapper = (*Error)(nil)

// New returns an Error carrying only a message.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Wrap returns an Error whose cause is err.
func Wrap(err error) *Error {
	return &Error{cause: err}
}

// WrapMessage returns an Error with both a message and a cause.
func WrapMessage(msg string, err error) *Error {
	return &Error{msg: msg, cause: err}
}

func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	default:
		return "unchecked error"
	}
}

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WrappedErrors implements errwrap.Wrapper.
func (e *Error) WrappedErrors() []error {
	if e.cause == nil {
		return nil
	}
	return []error{e.cause}
}
