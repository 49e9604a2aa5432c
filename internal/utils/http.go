package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as an application/json body with statusCode and
// returns the number of body bytes written.
//
// If data cannot be marshaled nothing has been written yet, so the client
// gets a plain 500 and the marshal error is returned for logging.
//
//	utils.WriteJSON(w, models.ShareResponse{Status: "success", Link: link}, http.StatusCreated)
//	utils.WriteJSON(w, models.StatusResponse{Status: "fail", Message: "not found"}, http.StatusNotFound)
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
