package server

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"task-export/internal/errors"
	"task-export/internal/logging"
	"task-export/internal/validation"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.businessAPI.Ping(r.Context()); err != nil {
		logging.LogError(err, "health check")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleColors serves the color catalog, announcing the label language
func (s *Server) handleColors(w http.ResponseWriter, r *http.Request) {
	list, err := s.businessAPI.ListColors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Language", list.Language)
	writeJSON(w, http.StatusOK, list)
}

// handleExport serves the export of a project as a CSV attachment, or as
// JSON when format=json is given
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["project_id"]
	projectID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, r, errors.NewInvalidInputError("project_id", raw, "must be an integer"))
		return
	}

	query := r.URL.Query()
	result, err := s.businessAPI.ExportTasks(r.Context(), projectID, query.Get("from"), query.Get("to"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if query.Get("format") == "json" {
		writeJSON(w, http.StatusOK, result)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("project-%d-tasks.csv", projectID)))
	w.WriteHeader(http.StatusOK)

	if err := csv.NewWriter(w).WriteAll(result.Table); err != nil {
		logging.LogError(err, "write csv response")
	}
}

func (s *Server) handleAssigneeNotification(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["task_id"]
	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, r, errors.NewInvalidInputError("task_id", raw, "must be an integer"))
		return
	}

	markdown, err := s.businessAPI.RenderAssigneeNotification(r.Context(), taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(markdown)); err != nil {
		logging.LogError(err, "write notification response")
	}
}

// statusCode maps an error to the HTTP status reported to the client
func statusCode(err error) int {
	if validation.IsValidationError(err) {
		return http.StatusBadRequest
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput, errors.ErrorTypeParse:
		return http.StatusBadRequest
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.ShouldLogError(err) {
		logging.LogError(err, r.Method+" "+r.URL.Path)
	}

	message := errors.GetUserMessage(err)
	if ve, ok := err.(*validation.ValidationError); ok {
		message = ve.GetUserFriendlyMessage()
	}

	writeJSON(w, statusCode(err), errorResponse{
		Error:     message,
		Code:      errors.GetErrorCode(err),
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.LogError(err, "encode json response")
	}
}
