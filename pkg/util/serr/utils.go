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

package serr

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Code returns the error code of the given error, or the unexpected-error
// code when the error carries none.
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch cause := cause.(type) {
	case strataError:
		return cause.code()

	default:
		if errors.Is(cause, context.Canceled) {
			return CanceledCode
		} else if errors.Is(cause, context.DeadlineExceeded) {
			return TimeoutCode
		}
		return errUnexpected.code()
	}
}

func IsRetryableErr(err error) bool {
	return Code(err)&retryableFlag != 0
}

func IsCanceledOrTimeout(err error) bool {
	return errors.IsAny(err, context.Canceled, context.DeadlineExceeded)
}

type errorField struct {
	name  string
	value any
}

func value(name string, v any) errorField {
	return errorField{name: name, value: v}
}

func (f errorField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}

func wrapFields(err strataError, fields ...errorField) error {
	sb := &strings.Builder{}
	for i, f := range fields {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.String())
	}
	return errors.Wrap(err, sb.String())
}

func appendMsg(err error, msg []string) error {
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Internal related

func WrapErrInternal(msg string, msgs ...string) error {
	return appendMsg(errors.Wrap(ErrInternal, msg), msgs)
}

// Datatype related

func WrapErrDatatypeInvalid(dt any, msg ...string) error {
	return appendMsg(wrapFields(ErrDatatypeInvalid, value("datatype", dt)), msg)
}

func WrapErrDatatypeUnsortable(dt any, msg ...string) error {
	return appendMsg(wrapFields(ErrDatatypeUnsortable, value("datatype", dt)), msg)
}

// Dimension related

func WrapErrDimensionNotFound(dim any, msg ...string) error {
	return appendMsg(wrapFields(ErrDimensionNotFound, value("dimension", dim)), msg)
}

func WrapErrDimensionMismatch(expected, actual any, msg ...string) error {
	return appendMsg(wrapFields(ErrDimensionMismatch,
		value("expected", expected),
		value("actual", actual),
	), msg)
}

// Range related

func WrapErrRangeInvalid(start, end any, msg ...string) error {
	return appendMsg(wrapFields(ErrRangeInvalid,
		value("start", start),
		value("end", end),
	), msg)
}

func WrapErrRangeOutOfBounds(r, bounds any, msg ...string) error {
	return appendMsg(wrapFields(ErrRangeOutOfBounds,
		value("range", r),
		value("bounds", bounds),
	), msg)
}

func WrapErrRangeNumLimitExceeded(num, limit any, msg ...string) error {
	return appendMsg(wrapFields(ErrRangeNumLimitExceeded,
		value("num", num),
		value("limit", limit),
	), msg)
}

// Subarray related

func WrapErrSubarrayInvalid(format string, args ...any) error {
	return errors.Wrapf(ErrSubarrayInvalid, format, args...)
}

// Fragment related

func WrapErrFragmentNotFound(id any, msg ...string) error {
	return appendMsg(wrapFields(ErrFragmentNotFound, value("fragment", id)), msg)
}

func WrapErrFragmentNameInvalid(name string, msg ...string) error {
	return appendMsg(wrapFields(ErrFragmentNameInvalid, value("name", name)), msg)
}

// Parameter related

func WrapErrParameterInvalid[T any](expected, actual T, msg ...string) error {
	return appendMsg(wrapFields(ErrParameterInvalid,
		value("expected", expected),
		value("actual", actual),
	), msg)
}

func WrapErrParameterInvalidMsg(format string, args ...any) error {
	return errors.Wrapf(ErrParameterInvalid, format, args...)
}
