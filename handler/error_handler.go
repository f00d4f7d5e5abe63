package handler

import (
	"log/slog"
	"net/http"

	"github.com/patkim97/folio/pkg/logger"
	"github.com/patkim97/folio/pkg/requestid"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// classifyError maps err to a status and client message. Errors without an
// HTTPError get a generic 500 so internal detail never leaks.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error.",
		LogLevel:   slog.LevelError,
	}

	if httpErr, ok := asHTTPError(err); ok {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	}
	if isClientError(info.StatusCode) {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		logger.Status(info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the error handler shared by all endpoints.
// It logs 4xx at warn and 5xx at error and answers {"error": <message>}.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		resp := JSON(ErrorBody{Error: info.Message}, WithJSONStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
