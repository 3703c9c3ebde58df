package response

import (
	"encoding/json"
	"net/http"
)

// FieldError describes one request validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type successBody struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type validationBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func WriteSuccess(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, successBody{Message: message, Data: data})
}

func WriteError(w http.ResponseWriter, statusCode int, message string, err error) {
	body := errorBody{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	writeJSON(w, statusCode, body)
}

func WriteValidationErrors(w http.ResponseWriter, message string, errs []FieldError) {
	writeJSON(w, http.StatusBadRequest, validationBody{Message: message, Errors: errs})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
