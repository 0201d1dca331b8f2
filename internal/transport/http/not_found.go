package http

import "net/http"

// NotFoundHandler answers unknown routes with a JSON 404.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "unknown route")
	})
}
