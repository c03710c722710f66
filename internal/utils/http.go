package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as the JSON body of a response with the given
// status and "Content-Type: application/json". It returns the number of body
// bytes written.
//
// If data cannot be marshaled nothing of it is sent: the client gets a plain
// 500 and the marshaling error is returned to the caller.
//
//	WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusCreated)
//	WriteJSON(w, models.ErrorResponse{Message: app.MsgRouteNotFound}, http.StatusNotFound)
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
