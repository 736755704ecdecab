package provider

import (
	"errors"
	"fmt"
)

const (
	DecodeErrorCode         = 1
	ClientErrorCode         = 400
	ValidationErrorCode     = 422
	InternalServerErrorCode = 500
)

// QueryError is the error type of every failed call.
// Construction and serialization problems carry ClientErrorCode,
// chain-scope violations ValidationErrorCode, wire problems
// InternalServerErrorCode and malformed status records DecodeErrorCode.
type QueryError struct {
	Code    int
	Message string
	cause   error
}

func (q *QueryError) Error() string {
	if q.cause != nil {
		return fmt.Sprintf("%d: %s, caused by: %s", q.Code, q.Message, q.cause.Error())
	}
	return fmt.Sprintf("%d: %s", q.Code, q.Message)
}

func (q *QueryError) Unwrap() error {
	return q.cause
}

func ClientError(cause error) *QueryError {
	return &QueryError{
		Message: "client error",
		cause:   cause,
		Code:    ClientErrorCode,
	}
}

func ValidationError(message string) *QueryError {
	return &QueryError{
		Message: message,
		Code:    ValidationErrorCode,
	}
}

func ServerError(cause error) *QueryError {
	return &QueryError{
		Message: "internal server error",
		cause:   cause,
		Code:    InternalServerErrorCode,
	}
}

func DecodeError(cause error) *QueryError {
	return &QueryError{
		Message: "incorrect record body",
		cause:   cause,
		Code:    DecodeErrorCode,
	}
}

func IsValidationError(err error) bool {
	var queryError *QueryError
	if errors.As(err, &queryError) {
		return queryError.Code == ValidationErrorCode
	}
	return false
}

func IsDecodeError(err error) bool {
	var queryError *QueryError
	if errors.As(err, &queryError) {
		return queryError.Code == DecodeErrorCode
	}
	return false
}
