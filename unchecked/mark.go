// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

import "runtime"

type markedError struct {
	error
}

func (m *markedError) Unchecked() bool { return true }

func (m *markedError) Unwrap() error { return m.error }

// Mark tags err as already unchecked, so translation passes it through
// untouched. Mark(nil) returns nil.
func Mark(err error) error {
	if err == nil {
		return nil
	}
	return &markedError{error: err}
}

// IsUnchecked reports whether err, by its own dynamic type, is exempt from
// translation. The wrap chain is not inspected: a checked error wrapping an
// *Error is still a checked error.
func IsUnchecked(err error) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *Error:
		return true
	case runtime.Error:
		return true
	case interface{ Unchecked() bool }:
		return e.Unchecked()
	default:
		return false
	}
}
