package util

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidID        = errors.New("id must be an integer")
	ErrInvalidPage      = errors.New("page must be a positive integer")
	ErrInvalidCategory  = errors.New("category id must not be negative")
	ErrEmptyBody        = errors.New("request body is empty")
)

// HTTPError 携带期望的响应状态码，交给 ErrorHandler 统一输出
type HTTPError struct {
	Status int
	Err    error
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Status)
	}
	return e.Err.Error()
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, err error) *HTTPError {
	return &HTTPError{Status: status, Err: err}
}

func BadRequestError(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, err)
}

func UnprocessableError(err error) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, err)
}

// BindError 区分请求体格式错误（400）和字段缺失/类型错误（422）
func BindError(err error) *HTTPError {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		intErr         *FlexIntError
	)
	switch {
	case errors.Is(err, io.EOF):
		return BadRequestError(ErrEmptyBody)
	case errors.As(err, &validationErrs), errors.As(err, &typeErr), errors.As(err, &intErr):
		return UnprocessableError(err)
	default:
		return BadRequestError(err)
	}
}

// StatusFor 将错误映射为 HTTP 状态码
func StatusFor(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrQuestionNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidPage), errors.Is(err, ErrEmptyBody):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCategory), errors.As(err, &validationErrs):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
