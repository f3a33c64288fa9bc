// Package httpjson writes the API's JSON response envelope and decodes
// request bodies with strict field checking.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Envelope is the shape of every response body. Data is omitted on
// errors; Error is omitted on success.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func fail(w http.ResponseWriter, status int, message, detail string) {
	write(w, status, Envelope{Success: false, Message: message, Error: detail})
}

func BadRequest(w http.ResponseWriter, detail string) {
	fail(w, http.StatusBadRequest, "Request could not be processed.", detail)
}

func Unauthorized(w http.ResponseWriter, detail string) {
	fail(w, http.StatusUnauthorized, "Authentication required.", detail)
}

func Forbidden(w http.ResponseWriter, detail string) {
	fail(w, http.StatusForbidden, "Access denied.", detail)
}

func NotFound(w http.ResponseWriter, detail string) {
	fail(w, http.StatusNotFound, "Resource not found.", detail)
}

func Conflict(w http.ResponseWriter, detail string) {
	fail(w, http.StatusConflict, "Conflict with existing data.", detail)
}

func TooManyRequests(w http.ResponseWriter, detail string) {
	fail(w, http.StatusTooManyRequests, "Rate limit exceeded.", detail)
}

func ServerError(w http.ResponseWriter) {
	fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.", "internal error")
}

// Decode reads a JSON request body into dst, rejecting unknown fields,
// multiple JSON values, and bodies over 1 MiB. The returned error
// message is safe to show to clients.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("malformed JSON")
		case errors.As(err, &typeErr):
			if typeErr.Field != "" {
				return fmt.Errorf("invalid value for field %q", typeErr.Field)
			}
			return fmt.Errorf("invalid value at offset %d", typeErr.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		case errors.As(err, &maxErr):
			return errors.New("request body exceeds 1MB")
		case strings.HasPrefix(err.Error(), "json: unknown field"):
			field := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("unknown field %s", field)
		default:
			return err
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}
