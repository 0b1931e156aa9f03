// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// getOpts - iterate the inbound Options and return a struct
func getOpts(opt ...Option) (*options, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			if err := o(&opts); err != nil {
				return nil, err
			}
		}
	}
	return &opts, nil
}

// Option - how Options are passed as arguments
type Option func(*options) error

// options = how options are represented
type options struct {
	withFatal   []func(error) bool
	withMessage string
	withLogger  hclog.Logger
}

func getDefaultOptions() options {
	return options{
		withLogger: hclog.NewNullLogger(),
	}
}

// WithFatal adds a classifier for errors that must never be wrapped. Any
// error for which fn returns true is re-raised as is.
func WithFatal(fn func(error) bool) Option {
	return func(o *options) error {
		if fn == nil {
			return fmt.Errorf("nil fatal classifier: %w", ErrInvalidParameter)
		}
		o.withFatal = append(o.withFatal, fn)
		return nil
	}
}

// WithMessage sets the message carried by every Error the translator
// produces.
func WithMessage(msg string) Option {
	return func(o *options) error {
		o.withMessage = msg
		return nil
	}
}

// WithLogger provides a logger that receives each translation decision at
// trace level.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return fmt.Errorf("nil logger: %w", ErrInvalidParameter)
		}
		o.withLogger = logger
		return nil
	}
}
