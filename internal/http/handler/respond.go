package handler

import (
	"encoding/json"
	"net/http"

	"appraise/internal/apperr"
)

type messageResp struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, messageResp{Message: msg})
}

// writeError answers with the status of err's kind and a fixed message; the
// underlying error is never shown to the client.
func writeError(w http.ResponseWriter, err error, msg string) {
	writeMessage(w, apperr.HTTPStatus(err), msg)
}
