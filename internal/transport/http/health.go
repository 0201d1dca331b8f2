package http

import (
	stdhttp "net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler reports basic liveness for the API.
func HealthHandler(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	writeJSON(w, stdhttp.StatusOK, healthResponse{Status: "ok", Service: "v-market"})
}
