// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the semantic category of a failed remote call
type ErrorType int

const (
	ErrorTypeUnauthorized ErrorType = iota // 401 Unauthorized
	ErrorTypeForbidden                     // 403 Forbidden
	ErrorTypeNotFound                      // 404 Not Found
	ErrorTypeValidation                    // 406 Not Acceptable, message supplied by the server
	ErrorTypeServer                        // 500 Internal Server Error
	ErrorTypeUnexpected                    // any other status, or a call that never completed
)

// DomainError represents an error with semantic type information.
// Message is user-facing and safe to display verbatim.
type DomainError struct {
	Type    ErrorType
	Message string
	Status  int
	Err     error // underlying error for wrapping
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the semantic type of an error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ErrorTypeUnexpected
}

// ErrorBody is the error payload the service attaches to validation failures.
type ErrorBody struct {
	Message string `json:"message"`
}

// Classify maps an unsuccessful HTTP status to its semantic category and
// user-facing message. The 406 message comes verbatim from the response body;
// every other category uses a fixed string.
func Classify(status int, body *ErrorBody) *DomainError {
	switch status {
	case http.StatusUnauthorized:
		return &DomainError{Type: ErrorTypeUnauthorized, Message: MsgErrorUnauthorized, Status: status}
	case http.StatusForbidden:
		return &DomainError{Type: ErrorTypeForbidden, Message: MsgErrorForbidden, Status: status}
	case http.StatusNotFound:
		return &DomainError{Type: ErrorTypeNotFound, Message: MsgErrorNotFound, Status: status}
	case http.StatusNotAcceptable:
		message := MsgErrorOccurred
		if body != nil {
			message = body.Message
		}
		return &DomainError{Type: ErrorTypeValidation, Message: message, Status: status}
	case http.StatusInternalServerError:
		return &DomainError{Type: ErrorTypeServer, Message: MsgErrorServer, Status: status}
	default:
		return &DomainError{
			Type:    ErrorTypeUnexpected,
			Message: fmt.Sprintf("%s (code %d)", MsgErrorUnexpected, status),
			Status:  status,
		}
	}
}

// ClassifyResponse classifies a settled but unsuccessful response, decoding
// the error body when the status calls for it.
func ClassifyResponse(resp Response) *DomainError {
	var body *ErrorBody
	if resp.Status() == http.StatusNotAcceptable {
		var decoded ErrorBody
		if err := resp.Decode(&decoded); err == nil {
			body = &decoded
		}
	}
	return Classify(resp.Status(), body)
}

// ClassifyCall covers both failure modes of a gateway call: a transport
// error (the call never settled) and an unsuccessful response.
func ClassifyCall(resp Response, err error) *DomainError {
	if err != nil || resp == nil {
		return &DomainError{Type: ErrorTypeUnexpected, Message: MsgErrorUnexpected, Err: err}
	}
	return ClassifyResponse(resp)
}
