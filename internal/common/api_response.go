package common

import (
	"encoding/json"
	"net/http"

	"infinite-experiment/sponsorlink/internal/logging"
	"infinite-experiment/sponsorlink/internal/models/dtos"
)

// RespondJSON writes body as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "status_code", code, "error", err.Error())
	}
}

// RespondMessage writes a {"message": ...} body, used for errors and plain acknowledgements.
func RespondMessage(w http.ResponseWriter, code int, message string) {
	RespondJSON(w, code, dtos.MessageResponse{Message: message})
}
