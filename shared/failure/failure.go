package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error that knows the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

func New(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// InternalError keeps the message of err under a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

// Unimplemented reports an operation the service accepts but does not carry out.
func Unimplemented(operation string) error {
	return New(http.StatusNotImplemented, operation+" is not implemented")
}

func NotFound(entityName, id string) error {
	return New(http.StatusNotFound, fmt.Sprintf("%s %s not found", entityName, id))
}

// GetCode returns the status carried by the first Failure in the chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
