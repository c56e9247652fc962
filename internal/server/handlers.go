package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joinforge-labs/joinforge/pkg/sqlgen"
)

type generateRequest struct {
	Query string `json:"query"`
}

type generateResponse struct {
	SQL string `json:"sql"`
}

type errorBody struct {
	Kind       string `json:"kind"`
	Identifier string `json:"identifier,omitempty"`
	Message    string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorBody{
			Kind:    "bad_request",
			Message: "request body must be JSON with a \"query\" field",
		})
		return
	}

	sql, err := sqlgen.Generate(req.Query)
	if err != nil {
		var genErr *sqlgen.Error
		if errors.As(err, &genErr) {
			writeError(w, http.StatusUnprocessableEntity, errorBody{
				Kind:       string(genErr.Kind),
				Identifier: genErr.Ident,
				Message:    genErr.Error(),
			})
			return
		}
		s.logger.Error("generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, errorBody{
			Kind:    "internal",
			Message: "internal error",
		})
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{SQL: sql})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, errorResponse{Error: body})
}
