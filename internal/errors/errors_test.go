package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mcg/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "count must be positive",
			expected: "INVALID_ARGUMENT: count must be positive",
		},
		{
			name:     "internal error",
			code:     errors.CodeInternal,
			message:  "roller failed",
			expected: "INTERNAL: roller failed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("entropy exhausted")
	wrapped := errors.Wrap(baseErr, "failed to draw race")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to draw race", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal("INTERNAL: failed to draw race: entropy exhausted", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.OutOfRange("face out of range").WithMeta("size", 13)
	wrapped := errors.Wrapf(baseErr, "failed to draw %s", "sign")

	s.Assert().Equal(errors.CodeOutOfRange, wrapped.Code)
	s.Assert().Equal("failed to draw sign", wrapped.Message)
	s.Assert().Equal(13, errors.GetMeta(wrapped)["size"])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(context.Canceled, errors.CodeCanceled, "menu interrupted")

	s.Assert().Equal(errors.CodeCanceled, wrapped.Code)
	s.Assert().True(errors.IsCanceled(wrapped))
	s.Assert().ErrorIs(wrapped, context.Canceled)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.Internal("a")
	err2 := errors.Internal("b")
	err3 := errors.InvalidArgument("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.OutOfRangef("face %d", 14)
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeOutOfRange, errors.GetCode(err))
	s.Assert().Equal(errors.CodeOutOfRange, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.InvalidArgument("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Assert().Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeCanceled, 130},
		{errors.CodeInternal, 1},
		{errors.CodeOutOfRange, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
