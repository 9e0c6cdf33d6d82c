package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"customer-management/internal/api/handler/dto"
	"customer-management/internal/pkg/apperrors"
)

const maxBodyBytes = 1 << 20

// decodeJSON decodes a single JSON object into v, rejecting unknown keys.
// Malformed payloads come back as validation errors naming the offending field.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return decodeBody(w, r, v, true)
}

// decodePartialJSON is decodeJSON for update payloads. Clients echo whole
// records back on update, so keys the target does not declare are skipped.
func decodePartialJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return decodeBody(w, r, v, false)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any, strict bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		return apperrors.NewValidationError("", "request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(v); err != nil {
		return translateDecodeError(err)
	}
	if decoder.More() {
		return apperrors.NewValidationError("", "request body must contain a single JSON object")
	}
	return nil
}

var dateType = reflect.TypeFor[dto.Date]()

func translateDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &typeErr) && typeErr.Type == dateType:
		return apperrors.NewValidationError(typeErr.Field, "must be a date (YYYY-MM-DD) or an ISO 8601 date-time")
	case errors.As(err, &typeErr):
		return apperrors.NewValidationError(typeErr.Field, fmt.Sprintf("must be of type %s", typeErr.Type))
	case errors.As(err, &syntaxErr):
		return apperrors.NewValidationError("", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	case errors.As(err, &maxErr):
		return apperrors.NewValidationError("", "request body too large")
	case errors.Is(err, io.EOF):
		return apperrors.NewValidationError("", "request body is required")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.NewValidationError("", "malformed JSON: unexpected end of input")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperrors.NewValidationError(field, "unknown or read-only field")
	default:
		return apperrors.NewValidationError("", "malformed request body")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, detail := errorStatus(err)
	respondJSON(w, status, dto.ErrorResponse{Error: detail})
}

var codeStatus = map[string]int{
	apperrors.CodeValidation:    http.StatusUnprocessableEntity,
	apperrors.CodeNotFound:      http.StatusNotFound,
	apperrors.CodeAlreadyExists: http.StatusConflict,
	apperrors.CodeUnauthorized:  http.StatusUnauthorized,
	apperrors.CodeRateLimited:   http.StatusTooManyRequests,
}

func errorStatus(err error) (int, dto.ErrorDetail) {
	code := apperrors.CodeOf(err)
	status, ok := codeStatus[code]
	if !ok {
		slog.Default().Error("Unhandled internal error", "error", err)
		return http.StatusInternalServerError, dto.ErrorDetail{Code: apperrors.CodeInternal, Message: "An unexpected error occurred."}
	}

	detail := dto.ErrorDetail{Code: code, Message: err.Error()}
	var validationError *apperrors.ValidationError
	switch {
	case errors.As(err, &validationError):
		detail.Message = validationError.Message
		detail.Field = validationError.Field
	case code == apperrors.CodeNotFound:
		detail.Message = "Resource not found."
	case code == apperrors.CodeUnauthorized:
		detail.Message = "Unauthorized"
	}
	return status, detail
}
