package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"library-lending/internal/core"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"

	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid id"
	msgInternalError      = "internal server error"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(statusCode)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logError(logMsgEncodingResponseFailed, err)
	}
}

// writeDomainError maps a typed domain error onto an HTTP status. Anything
// that is not a domain rejection is reported as an internal error without
// leaking the cause to the client.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, core.ErrConflict):
		h.writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, core.ErrInvalidTransition),
		errors.Is(err, core.ErrInvalidState),
		errors.Is(err, core.ErrInvalidArgument):

		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	default:
		h.logError(logMsgOperationFailed, err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: msgInternalError})
	}
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}

// decodeAndValidate unmarshals the request body into target and runs the
// struct validation rules declared on it.
func decodeAndValidate(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return err
	}

	return validate.Struct(target)
}
