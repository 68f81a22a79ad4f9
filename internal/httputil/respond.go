// Package httputil holds the small request/response helpers shared by all
// HTTP handlers: JSON encoding, the {"message": ...} error shape the API
// uses everywhere, and request body decoding with struct validation.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for request structs
var validate = validator.New()

// MessageResponse is the plain message body used for errors and simple
// success acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON serializes data as JSON with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteMessage writes a {"message": ...} body with the given status code
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// DecodeAndValidate decodes the request body into dst and runs struct
// validation on it. Returns a caller-presentable error when the body is
// malformed or a required field is missing.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("Invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return errors.New("Missing required fields")
	}
	return nil
}

// Validate runs struct validation only, for inputs assembled from query
// parameters rather than a JSON body.
func Validate(dst interface{}) error {
	if err := validate.Struct(dst); err != nil {
		return errors.New("Missing required fields")
	}
	return nil
}
