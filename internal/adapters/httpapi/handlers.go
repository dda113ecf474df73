package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"

	"codetally/internal/adapters/progress"
	"codetally/internal/config"
	"codetally/internal/domain"
	"codetally/internal/logging"
)

const maxRequestBytes = 1 << 20

type analyzeRequest struct {
	Branch     string `json:"branch"`
	FolderPath string `json:"folderPath"`
	SessionID  string `json:"sessionId"`
}

type analyzeRepoRequest struct {
	Branch    string `json:"branch"`
	RepoPath  string `json:"repoPath"`
	ScanID    string `json:"scanId"`
	SessionID string `json:"sessionId"`
}

type apiResponse struct {
	Data    any                `json:"data,omitempty"`
	Message string             `json:"message,omitempty"`
	ScanID  string             `json:"scanId,omitempty"`
	Success bool               `json:"success"`
	Total   *domain.ScanTotals `json:"total,omitempty"`
}

type scanData struct {
	Outcome      domain.ScanOutcome        `json:"outcome"`
	Repositories []domain.RepositoryReport `json:"repositories"`
	ScanID       string                    `json:"scanId"`
	Total        domain.ScanTotals         `json:"total"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	defer s.recoverAnalysis(w, req.SessionID)

	if req.FolderPath == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Message: "folderPath is required"})
		return
	}
	scope, err := domain.ParseBranchScope(req.Branch)
	if err != nil {
		s.rejectInput(w, req.SessionID, err)
		return
	}

	// The scan outlives an observer that disconnects mid-request
	ctx := context.WithoutCancel(r.Context())

	result, err := s.scans.ScanAll(ctx, config.ExpandPath(req.FolderPath), scope, req.SessionID)
	if err != nil {
		if domain.IsInputError(err) {
			writeJSON(w, http.StatusBadRequest, apiResponse{Message: "folder path does not exist or is not accessible"})
			return
		}
		s.failAnalysis(w, req.SessionID, err)
		return
	}

	scanID := uuid.New().String()
	if err := s.store.ReplaceAll(ctx, scanID, result.Reports); err != nil {
		s.failAnalysis(w, req.SessionID, err)
		return
	}

	resp := apiResponse{
		Data: scanData{
			Outcome:      result.Outcome,
			Repositories: result.Reports,
			ScanID:       scanID,
			Total:        result.Totals,
		},
		Success: true,
	}
	if result.Outcome == domain.OutcomeNoRepositories {
		resp.Message = "no git repositories found"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalyzeRepo(w http.ResponseWriter, r *http.Request) {
	var req analyzeRepoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	defer s.recoverAnalysis(w, req.SessionID)

	if req.RepoPath == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Message: "repoPath is required"})
		return
	}
	scope, err := domain.ParseBranchScope(req.Branch)
	if err != nil {
		s.rejectInput(w, req.SessionID, err)
		return
	}

	ctx := context.WithoutCancel(r.Context())

	if req.ScanID != "" {
		if _, err := s.store.List(ctx, req.ScanID); err != nil {
			if errors.Is(err, domain.ErrScanNotFound) {
				writeJSON(w, http.StatusNotFound, apiResponse{Message: fmt.Sprintf("scan %s not found", req.ScanID)})
				return
			}
			s.failAnalysis(w, req.SessionID, err)
			return
		}
	}

	report, err := s.scans.ReanalyzeOne(ctx, config.ExpandPath(req.RepoPath), scope, req.SessionID)
	if err != nil {
		if domain.IsInputError(err) {
			writeJSON(w, http.StatusBadRequest, apiResponse{Message: "repository path does not exist or is not accessible"})
			return
		}
		s.failAnalysis(w, req.SessionID, err)
		return
	}

	resp := apiResponse{Data: report, Success: true}
	if req.ScanID != "" {
		if err := s.store.Replace(ctx, req.ScanID, report); err != nil {
			if errors.Is(err, domain.ErrScanNotFound) {
				writeJSON(w, http.StatusNotFound, apiResponse{Message: fmt.Sprintf("scan %s not found", req.ScanID)})
				return
			}
			s.failAnalysis(w, req.SessionID, err)
			return
		}
		reports, err := s.store.List(ctx, req.ScanID)
		if err != nil {
			s.failAnalysis(w, req.SessionID, err)
			return
		}
		totals := domain.FoldTotals(reports)
		resp.ScanID = req.ScanID
		resp.Total = &totals
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	scanID := r.PathValue("scanId")
	reports, err := s.store.List(r.Context(), scanID)
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			writeJSON(w, http.StatusNotFound, apiResponse{Message: fmt.Sprintf("scan %s not found", scanID)})
			return
		}
		logging.Logger.Error("Failed to load scan", "scan_id", scanID, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Message: fmt.Sprintf("server error: %v", err)})
		return
	}

	result := domain.NewScanResult(reports)
	writeJSON(w, http.StatusOK, apiResponse{
		Data: scanData{
			Outcome:      result.Outcome,
			Repositories: result.Reports,
			ScanID:       scanID,
			Total:        result.Totals,
		},
		Success: true,
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		logging.Logger.Error("Streaming not supported", "error", err)
		return
	}

	sink := progress.NewStreamSink(w, encodeSSE, []byte(": heartbeat\n\n"), func() { _ = rc.Flush() })
	if err := s.registry.Open(sessionID, sink); err != nil {
		logging.Logger.Warn("Failed to open progress stream", "session_id", sessionID, "error", err)
		return
	}

	select {
	case <-r.Context().Done():
	case <-sink.Done():
	}
	s.registry.Release(sessionID, sink)
	sink.Close()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "service is running",
	})
}

// rejectInput answers 400 and tells the observer why
func (s *Server) rejectInput(w http.ResponseWriter, sessionID string, err error) {
	s.registry.Publish(sessionID, fmt.Sprintf("Invalid request: %v", err), domain.SeverityError)
	writeJSON(w, http.StatusBadRequest, apiResponse{Message: err.Error()})
}

// failAnalysis answers 500 and tells the observer the analysis failed
func (s *Server) failAnalysis(w http.ResponseWriter, sessionID string, err error) {
	logging.Logger.Error("Analysis failed", "session_id", sessionID, "error", err)
	s.registry.Publish(sessionID, fmt.Sprintf("Analysis error: %v", err), domain.SeverityError)
	writeJSON(w, http.StatusInternalServerError, apiResponse{Message: fmt.Sprintf("server error: %v", err)})
}

// recoverAnalysis converts a panic during analysis into a failed request
func (s *Server) recoverAnalysis(w http.ResponseWriter, sessionID string) {
	if rec := recover(); rec != nil {
		logging.Logger.Error("Panic during analysis",
			"session_id", sessionID,
			"panic", rec,
			"stack", string(debug.Stack()))
		s.failAnalysis(w, sessionID, fmt.Errorf("unexpected failure: %v", rec))
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Logger.Warn("Failed to write response", "error", err)
	}
}

// encodeSSE renders an event as one server-sent event frame
func encodeSSE(event domain.ProgressEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	frame := make([]byte, 0, len(data)+8)
	frame = append(frame, "data: "...)
	frame = append(frame, data...)
	frame = append(frame, "\n\n"...)
	return frame, nil
}
