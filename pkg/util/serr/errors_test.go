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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"
)

type ErrSuite struct {
	suite.Suite
}

func (s *ErrSuite) TestCode() {
	err := WrapErrDimensionNotFound(1)
	errors.Wrap(err, "failed to add range")
	s.ErrorIs(err, ErrDimensionNotFound)
	s.Equal(Code(ErrDimensionNotFound), Code(err))
	s.Equal(TimeoutCode, Code(context.DeadlineExceeded))
	s.Equal(CanceledCode, Code(context.Canceled))
	s.Equal(errUnexpected.errCode, Code(errUnexpected))
	s.Equal(int32(0), Code(nil))

	sameCodeErr := newStrataError("new error", ErrDimensionNotFound.errCode, false)
	s.True(sameCodeErr.Is(ErrDimensionNotFound))
}

func (s *ErrSuite) TestWrap() {
	// Internal related
	s.ErrorIs(WrapErrInternal("never throw out"), ErrInternal)

	// Datatype related
	s.ErrorIs(WrapErrDatatypeInvalid("FLOAT128", "failed to build manager"), ErrDatatypeInvalid)
	s.ErrorIs(WrapErrDatatypeUnsortable("CHAR", "failed to sort ranges"), ErrDatatypeUnsortable)

	// Dimension related
	s.ErrorIs(WrapErrDimensionNotFound(3, "failed to add range"), ErrDimensionNotFound)
	s.ErrorIs(WrapErrDimensionMismatch(8, 4, "domain width"), ErrDimensionMismatch)

	// Range related
	s.ErrorIs(WrapErrRangeInvalid(10, 1, "start after end"), ErrRangeInvalid)
	s.ErrorIs(WrapErrRangeOutOfBounds("[0, 100]", "[0, 10]"), ErrRangeOutOfBounds)
	s.ErrorIs(WrapErrRangeNumLimitExceeded(2, 1, "global order"), ErrRangeNumLimitExceeded)

	// Subarray related
	s.ErrorIs(WrapErrSubarrayInvalid("range count overflows uint64"), ErrSubarrayInvalid)

	// Fragment related
	s.ErrorIs(WrapErrFragmentNotFound(1, "failed to open"), ErrFragmentNotFound)
	s.ErrorIs(WrapErrFragmentNameInvalid("__bad", "failed to parse"), ErrFragmentNameInvalid)

	// Parameter related
	s.ErrorIs(WrapErrParameterInvalid(8, 1, "failed to create"), ErrParameterInvalid)
	s.ErrorIs(WrapErrParameterInvalidMsg("items is empty"), ErrParameterInvalid)
}

func (s *ErrSuite) TestRetryable() {
	s.False(IsRetryableErr(ErrParameterInvalid))
	s.False(IsRetryableErr(WrapErrRangeInvalid(2, 1)))
	s.True(IsRetryableErr(newStrataError("retry me", 3000, true)))
}

func (s *ErrSuite) TestCombine() {
	var (
		errFirst  = errors.New("first")
		errSecond = errors.New("second")
		errThird  = errors.New("third")
	)

	err := Combine(errFirst, errSecond)
	s.True(errors.Is(err, errFirst))
	s.True(errors.Is(err, errSecond))
	s.False(errors.Is(err, errThird))

	s.Equal("first: second", err.Error())
}

func (s *ErrSuite) TestCombineWithNil() {
	err := errors.New("non-nil")

	err = Combine(nil, err)
	s.NotNil(err)
}

func (s *ErrSuite) TestCombineOnlyNil() {
	err := Combine(nil, nil)
	s.Nil(err)
}

func (s *ErrSuite) TestCombineCode() {
	err := Combine(WrapErrRangeInvalid(4, 2), WrapErrDimensionNotFound(9))
	s.Equal(Code(ErrDimensionNotFound), Code(err))
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrSuite))
}
