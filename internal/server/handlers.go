package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/bullet-arbiter/internal/analysis"
	"github.com/jonathan/bullet-arbiter/internal/arbiter"
	"github.com/jonathan/bullet-arbiter/internal/logger"
)

// maxBatchSize bounds a single arbitration request; larger resumes should be
// submitted in chunks by the caller.
const maxBatchSize = 200

// ArbitrateRequest is the batch arbitration request body.
type ArbitrateRequest struct {
	// Empty lists are legal input; only the batch size is bounded.
	RoleTitle string   `json:"role_title"`
	Originals []string `json:"originals" validate:"max=200"`
	Tailored  []string `json:"tailored" validate:"max=200"`
}

// ArbitrateBulletRequest is the single-pair arbitration request body.
type ArbitrateBulletRequest struct {
	RoleTitle string `json:"role_title"`
	Original  string `json:"original" validate:"required"`
	Tailored  string `json:"tailored" validate:"required"`
}

// AnalyzeRequest is the single-text analysis request body.
type AnalyzeRequest struct {
	RoleTitle string `json:"role_title"`
	Text      string `json:"text" validate:"required"`
}

func (s *Server) handleArbitrate(w http.ResponseWriter, r *http.Request) {
	var req ArbitrateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validateRequest(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := arbiter.ScoreArbiter(req.Originals, req.Tailored, req.RoleTitle)
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleArbitrateBullet(w http.ResponseWriter, r *http.Request) {
	var req ArbitrateBulletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validateRequest(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	decision := arbiter.ArbitrateBullet(req.Original, req.Tailored, req.RoleTitle)
	s.jsonResponse(w, http.StatusOK, decision)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validateRequest(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := analysis.AnalyzeContent(req.Text, req.RoleTitle)
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// validateRequest runs struct-tag validation and converts the first failure
// into a caller-facing validation error.
func (s *Server) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: fe.Field(), Message: "failed " + fe.Tag() + " validation"}
	}
	return &ErrValidation{Field: "(request)", Message: err.Error()}
}

// withRequestLogging tags every request with a UUID and logs method, path,
// status and duration.
func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		recorder.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(recorder, r)

		s.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", logger.TruncateForLog(r.URL.Path, 120)),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
