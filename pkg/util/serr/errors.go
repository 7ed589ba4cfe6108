// Licensed to the Strata project under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. The Strata project licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serr holds the coded error taxonomy shared by all engine
// components. Callers compare against the leaf errors with errors.Is and
// build instances with the WrapErr helpers.
package serr

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	retryableFlag       = 1 << 16
	CanceledCode  int32 = 10000
	TimeoutCode   int32 = 10001
)

// Define leaf errors here.
// Check whether an existing leaf fits before adding a new one.
// Name: Err + related prefix + error name.
var (
	// Internal faults, never expected to reach the embedding application
	ErrInternal = newStrataError("internal error", 1, false)

	// Datatype related
	ErrDatatypeInvalid    = newStrataError("invalid datatype", 100, false)
	ErrDatatypeUnsortable = newStrataError("datatype has no sort order", 101, false)

	// Dimension related
	ErrDimensionNotFound = newStrataError("dimension not found", 200, false)
	ErrDimensionMismatch = newStrataError("dimension mismatch", 201, false)

	// Range related
	ErrRangeInvalid          = newStrataError("invalid range", 300, false)
	ErrRangeOutOfBounds      = newStrataError("range out of domain bounds", 301, false)
	ErrRangeNumLimitExceeded = newStrataError("exceeded the limit number of ranges", 302, false)

	// Subarray related
	ErrSubarrayInvalid = newStrataError("invalid subarray", 400, false)

	// Fragment related
	ErrFragmentNotFound    = newStrataError("fragment not found", 500, false)
	ErrFragmentNameInvalid = newStrataError("invalid fragment name", 501, false)

	// Parameter related
	ErrParameterInvalid = newStrataError("invalid parameter", 1100, false)

	// Do NOT export this,
	// keep only for converting unknown errors to strataError
	errUnexpected = newStrataError("unexpected error", (1<<16)-1, false)
)

type strataError struct {
	msg     string
	errCode int32
}

func newStrataError(msg string, code int32, retriable bool) strataError {
	if retriable {
		code |= retryableFlag
	}
	return strataError{
		msg:     msg,
		errCode: code,
	}
}

func (e strataError) code() int32 {
	return e.errCode
}

func (e strataError) Error() string {
	return e.msg
}

func (e strataError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(strataError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

type multiErrors struct {
	errs []error
}

func (e multiErrors) Unwrap() error {
	if len(e.errs) <= 1 {
		return nil
	}
	// the cause of a multi error is defined as the last error
	if len(e.errs) == 2 {
		return e.errs[1]
	}

	return multiErrors{
		errs: e.errs[1:],
	}
}

func (e multiErrors) Error() string {
	final := e.errs[0]
	for i := 1; i < len(e.errs); i++ {
		final = errors.Wrap(e.errs[i], final.Error())
	}
	return final.Error()
}

func (e multiErrors) Is(err error) bool {
	for _, item := range e.errs {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

// Combine merges the non-nil errors into one error that matches any of them
// with errors.Is. Returns nil if every input is nil.
func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	if len(errs) == 0 {
		return nil
	}
	return multiErrors{
		errs,
	}
}
