// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/errwrap"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")

	tests := []struct {
		name        string
		input       *Error
		expectMsg   string
		expectCause error
	}{
		{
			name:      "empty",
			input:     &Error{},
			expectMsg: "unchecked error",
		},
		{
			name:      "message",
			input:     New("reading config"),
			expectMsg: "reading config",
		},
		{
			name:        "cause",
			input:       Wrap(cause),
			expectMsg:   "boom",
			expectCause: cause,
		},
		{
			name:        "message-and-cause",
			input:       WrapMessage("reading config", cause),
			expectMsg:   "reading config: boom",
			expectCause: cause,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tt.expectMsg, tt.input.Error())
			assert.Equal(tt.expectCause, tt.input.Cause())
			assert.Equal(tt.expectCause, errors.Unwrap(tt.input))
			if tt.expectCause == nil {
				assert.Nil(tt.input.WrappedErrors())
				return
			}
			assert.ErrorIs(tt.input, tt.expectCause)
			assert.Equal([]error{tt.expectCause}, tt.input.WrappedErrors())
		})
	}
}

func TestErrorWrapChain(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cause := &checkedError{msg: "denied"}
	err := fmt.Errorf("outer: %w", Wrap(cause))

	var target *checkedError
	assert.ErrorAs(err, &target)
	assert.Same(cause, target)

	var ue *Error
	assert.ErrorAs(err, &ue)
	assert.Same(cause, ue.Cause())

	assert.True(errwrap.ContainsType(Wrap(cause), new(checkedError)))
}
