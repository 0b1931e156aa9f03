// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

import "runtime"

// panicValue runs fn and returns whatever it panicked with.
func panicValue(fn func()) (v any) {
	defer func() {
		v = recover()
	}()
	fn()
	return nil
}

// indexError returns a genuine runtime.Error produced by the Go runtime.
func indexError() (err runtime.Error) {
	defer func() {
		err = recover().(runtime.Error)
	}()
	var s []int
	i := 1
	_ = s[i]
	return nil
}

type checkedError struct {
	msg string
}

func (c *checkedError) Error() string { return c.msg }

type taggedError struct {
	unchecked bool
}

func (t *taggedError) Error() string   { return "tagged" }
func (t *taggedError) Unchecked() bool { return t.unchecked }
