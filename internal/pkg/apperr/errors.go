package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeTaskBusy       = "TASK_BUSY"
	CodeRemoteResponse = "REMOTE_RESPONSE"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrTaskBusy is returned when a synchronization or counting run is requested
	// while another run is still in flight. Runs are rejected, not queued.
	ErrTaskBusy = New(fiber.StatusConflict, CodeTaskBusy, "another task is currently running")

	// ErrRemoteResponse is returned when the gacha log API answers with a
	// non-success retcode. The remote message is carried verbatim via Msg.
	ErrRemoteResponse = New(fiber.StatusBadGateway, CodeRemoteResponse, "remote gacha log API returned an error response")
)

type Extras map[string]interface{}

type AppError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e AppError) Msg(format string, parts ...interface{}) *AppError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e AppError) WithExtras(extras Extras) *AppError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *AppError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
