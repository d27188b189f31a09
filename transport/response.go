package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/warehouse-tracker/constant"
	"github.com/muhammadheryan/warehouse-tracker/utils/errors"
)

// ErrorResponse is the JSON error body consumed by the UI.
type ErrorResponse struct {
	Message string `json:"message"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	status := constant.ErrorTypeHTTPCode[constant.ErrInternal]
	message := constant.ErrorTypeMessage[constant.ErrInternal]

	if ce, ok := err.(errors.CustomError); ok {
		status = ce.ErrorHTTPCode()
		message = ce.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}
