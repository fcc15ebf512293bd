package server

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func WriteJSONError(w http.ResponseWriter, status int, msg string) error {
	return writeJSON(w, status, ErrorResponse{Reason: msg})
}
