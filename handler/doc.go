// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request value and
// return a Response:
//
//	type ContactRequest struct {
//		Name  string `json:"name"`
//		Email string `json:"email"`
//	}
//
//	func submit(ctx handler.Context, req ContactRequest) handler.Response {
//		if err := relay(ctx, req); err != nil {
//			return handler.JSONError(handler.NewHTTPError(http.StatusBadGateway, err.Error(), err))
//		}
//		return handler.JSON(map[string]bool{"ok": true})
//	}
//
//	r.Post("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, ContactRequest](binder.LooseJSON()),
//		handler.WithErrorHandler[handler.Context, ContactRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// JSON responses are written as-is with Content-Type application/json and
// Cache-Control no-store:
//
//	handler.JSON(v)                                  // 200 with v as body
//	handler.JSON(v, handler.WithJSONStatus(201))     // custom status
//	handler.JSONError(err)                           // {"error": "..."}
//	handler.Options(http.MethodPost, http.MethodOptions) // 204 with Allow
//
// # Errors
//
// HTTPError carries a status code and the message shown to the client. The
// error handler from NewErrorHandler logs every failure with the request ID
// and renders it as {"error": message}; errors that are not HTTPError become a
// generic 500.
package handler
