// Package respond writes HTTP responses: JSON documents, HTML pages and
// fragments, redirects and hypermedia signals, plus the error mapping shared
// by every handler. Errors are sanitized so internal details never reach the
// client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"brewlog/internal/domain/entity"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeSubstrings mark error messages that are fine to show to users.
var safeSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"unsupported",
	"must be",
	"cannot be",
	"too long",
	"no changes",
	"still has",
}

// SafeError sanitizes error messages before returning them to users.
// 5xx errors and messages without a known-safe phrase become
// "internal server error", with details logged for debugging.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	// ユーザーに安全に返せるエラーかどうかを判定
	msg := err.Error()
	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeSubstrings {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 500エラーは常に内部エラーとして扱う
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	// 機密情報をマスクしてログ出力
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", SanitizeError(err)))
	message := "internal server error"
	if code < 500 {
		message = strings.ToLower(http.StatusText(code))
	}
	JSON(w, code, map[string]string{"error": message})
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// StatusFor maps an error to its HTTP status:
//
//	AppError                          -> its Code
//	bad content type, bad payload     -> 400
//	entity.ValidationError            -> 400
//	entity.ErrNotFound                -> 404
//	entity.ErrConflict                -> 409
//	entity.ErrUnavailable             -> 503
//	anything else                     -> 500
func StatusFor(err error) int {
	var appErr *AppError
	var payloadErr *PayloadError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, ErrUnsupportedContentType), errors.As(err, &payloadErr), errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Fail answers err with the status from StatusFor. Client errors carry the
// most specific message available; not-found carries only a generic notice;
// server errors are logged and answered generically.
func Fail(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	code := StatusFor(err)

	var appErr *AppError
	if errors.As(err, &appErr) {
		// AppErrorの場合、ユーザー向けメッセージを返す
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.String("status", http.StatusText(appErr.Code)),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.Any("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, map[string]string{"error": appErr.UserMsg})
		return
	}

	switch {
	case code == http.StatusNotFound:
		JSON(w, code, map[string]string{"error": "not found"})
	case code == http.StatusServiceUnavailable:
		JSON(w, code, map[string]string{"error": strings.ToLower(http.StatusText(code))})
	case code < 500:
		JSON(w, code, map[string]string{"error": clientMessage(err)})
	default:
		SafeError(w, code, err)
	}
}

// clientMessage strips wrapping context from a client error.
func clientMessage(err error) string {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	var perr *PayloadError
	if errors.As(err, &perr) {
		return perr.Error()
	}
	if errors.Is(err, ErrUnsupportedContentType) {
		return ErrUnsupportedContentType.Error()
	}
	return err.Error()
}
