// Copyright (c) 2026 DevOpsCorp. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// It ensures that every response (success or error) across the entire
// application follows a strict, predictable JSON envelope: success responses
// carry `"success": true` alongside their payload fields, error responses
// carry `"success": false` plus either an `error` string or a field-keyed
// `errors` map. This consistency is what the SPA client parses against.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/devopscorp/auth-api/internal/platform/apperr"
	"github.com/devopscorp/auth-api/internal/platform/ctxutil"
)

// ErrorEnvelope is the JSON envelope for error responses.
//
// Exactly one of Error or Errors is populated: Error for single-message
// failures (auth, conflict, not-found, internal), Errors for field-keyed
// validation failures.
type ErrorEnvelope struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the given payload.
func OK(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusOK, payload)
}

// Created writes a 201 Created response with the given payload.
func Created(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusCreated, payload)
}

// Error converts any Go error into a standardized JSON API error response.
//
// # Debug Gating
//
// For 5xx failures the underlying cause is included in the body only when the
// debug flag is set on the request context; production clients always see a
// generic message.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: classify as 500 and keep the cause
		// for logging and debug output.
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	message := appError.Message
	if appError.HTTPStatus >= 500 && appError.Cause != nil && ctxutil.IsDebug(request.Context()) {
		message = appError.Cause.Error()
	}

	envelope := ErrorEnvelope{Success: false}
	if len(appError.Fields) > 0 {
		envelope.Errors = appError.Fields
	} else {
		envelope.Error = message
	}

	JSON(writer, appError.HTTPStatus, envelope)
}
