package handler

import (
	"net/http"
	"strings"
)

type emptyResponse struct {
	status  int
	headers http.Header
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for k, v := range e.headers {
		w.Header()[k] = v
	}
	w.WriteHeader(e.status)
	return nil
}

// Options answers a preflight request with 204 and an Allow header
// listing methods.
func Options(methods ...string) Response {
	return emptyResponse{
		status:  http.StatusNoContent,
		headers: http.Header{"Allow": []string{strings.Join(methods, ", ")}},
	}
}
