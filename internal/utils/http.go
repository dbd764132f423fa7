package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// fallbackBody is sent when the payload itself cannot be encoded.
const fallbackBody = `{"error":"internal server error"}`

// WriteJSON encodes data and writes it with statusCode. A value that cannot
// be encoded turns the response into a 500 with a generic JSON error body, and
// the encoding error is returned to the caller for logging.
//
//	WriteJSON(w, profile, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		writeRaw(w, []byte(fallbackBody), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return writeRaw(w, body, statusCode)
}

func writeRaw(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(statusCode)
	return w.Write(body)
}
