package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bio-console/models"
)

// WriteJSON writes data as a JSON body with statusCode and returns the
// number of body bytes written. A value that cannot be marshaled (such as a
// result carrying the zero modality) turns into a plain 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] with the given status. The
// message is shown to the caller as-is and must not carry internal details.
func WriteError(w http.ResponseWriter, statusCode int, message, traceID string) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message, TraceID: traceID}, statusCode)
}
