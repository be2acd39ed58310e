package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal surfaces the cause's text to the caller. The contact relay contract
// reports provider and parse errors verbatim.
func Internal(err error) *AppError {
	if err == nil {
		return New(http.StatusInternalServerError, "Internal Server Error", nil)
	}
	return New(http.StatusInternalServerError, err.Error(), err)
}
