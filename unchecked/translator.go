// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-secure-stdlib/lambdautil/functional"
)

// Translator turns checked errors into *Error values according to its
// configured policy. It holds no mutable state and is safe for concurrent
// use.
type Translator struct {
	fatal   []func(error) bool
	message string
	logger  hclog.Logger
}

var defaultTranslator = &Translator{logger: hclog.NewNullLogger()}

// NewTranslator returns a Translator configured by opt.
func NewTranslator(opt ...Option) (*Translator, error) {
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &Translator{
		fatal:   opts.withFatal,
		message: opts.withMessage,
		logger:  opts.withLogger,
	}, nil
}

func (t *Translator) exempt(err error) bool {
	if IsUnchecked(err) {
		return true
	}
	for _, fn := range t.fatal {
		if fn(err) {
			return true
		}
	}
	return false
}

// Translate returns err itself when it is nil, already unchecked or fatal,
// and a new *Error caused by err otherwise.
func (t *Translator) Translate(err error) error {
	if err == nil {
		return nil
	}
	logger := t.logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if t.exempt(err) {
		if logger.IsTrace() {
			logger.Trace("passing error through untranslated", "error", err)
		}
		return err
	}
	if logger.IsTrace() {
		logger.Trace("translating checked error", "error", err)
	}
	return &Error{msg: t.message, cause: err}
}

// Run invokes b. If b fails, Run panics with the translated error.
func (t *Translator) Run(b functional.Block) {
	if err := b(); err != nil {
		panic(t.Translate(err))
	}
}

// CallWith invokes p using t's policy and returns its result. If p fails,
// CallWith panics with the translated error.
func CallWith[R any](t *Translator, p functional.Procedure[R]) R {
	v, err := p()
	if err != nil {
		panic(t.Translate(err))
	}
	return v
}

// Translate applies the default policy to err.
func Translate(err error) error {
	return defaultTranslator.Translate(err)
}

// Run invokes b, panicking with an *Error if b returns a checked error:
//
//	for _, path := range paths {
//		unchecked.Run(func() error {
//			return os.Remove(path)
//		})
//	}
func Run(b functional.Block) {
	defaultTranslator.Run(b)
}

// Call invokes p and returns its result, panicking with an *Error if p
// returns a checked error.
func Call[R any](p functional.Procedure[R]) R {
	return CallWith(defaultTranslator, p)
}
