package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every JSON body is wrapped in. Only Status is
// always present.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func ResponseJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, Response{Status: true, Message: message, Data: data})
}

// ResponseNoContent writes a bare 204 with no body.
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ResponseError writes the error record every failure is rendered as.
// fields, when non-nil, maps offending fields to messages.
func ResponseError(w http.ResponseWriter, code int, message string, fields any) {
	ResponseJSON(w, code, Response{Status: false, Error: message, Errors: fields})
}

func ResponseBadRequest(w http.ResponseWriter, message string, fields any) {
	ResponseError(w, http.StatusBadRequest, message, fields)
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message, nil)
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, nil)
}

// ResponseInternalError is the only 500 writer; callers pass the generic
// message and keep the cause in the logs.
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, nil)
}
