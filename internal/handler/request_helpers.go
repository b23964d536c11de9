package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meganrobin/Item-Management-API/internal/logger"
)

// decodeAndValidate decodes a JSON request body and validates it. On failure
// the error response has already been written and the handler should return.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("Invalid %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	return nil
}

// urlParamInt extracts a positive integer URL parameter. On failure the error
// response has already been written.
func urlParamInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid URL parameter", "param", name, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return value, true
}
