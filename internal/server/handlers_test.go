package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/bullet-arbiter/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Port: 0})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHandleArbitrate_Batch(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/arbitrate", ArbitrateRequest{
		RoleTitle: "Senior Product Manager",
		Originals: []string{"Improved the onboarding process"},
		Tailored:  []string{"Led cross-functional team to redesign onboarding using RICE prioritization, increasing activation by 35% for 10K users"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ArbiterResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Decisions, 1)
	assert.Equal(t, types.WinnerTailored, result.Decisions[0].Winner)
	assert.True(t, result.MethodologyPreserved)
}

func TestHandleArbitrate_EmptyBatchIsLegal(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/arbitrate", ArbitrateRequest{})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ArbiterResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Decisions)
	assert.True(t, result.MethodologyPreserved)
}

func TestHandleArbitrate_BatchTooLarge(t *testing.T) {
	s := newTestServer(t)

	oversized := make([]string, maxBatchSize+1)
	rec := doJSON(t, s, http.MethodPost, "/arbitrate", ArbitrateRequest{
		Originals: oversized,
		Tailored:  oversized,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestHandleArbitrate_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/arbitrate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleArbitrateBullet_MetricGuard(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/arbitrate/bullet", ArbitrateBulletRequest{
		Original: "Increased user retention by 40% through targeted onboarding improvements",
		Tailored: "Improved user retention through targeted onboarding improvements",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var decision types.ArbiterDecision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decision))
	assert.Equal(t, types.WinnerOriginal, decision.Winner)
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/analyze", AnalyzeRequest{
		RoleTitle: "Registered Nurse",
		Text:      "Coordinated care for 40 patients daily, reducing wait times 25%",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var analysis types.ContentAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.GreaterOrEqual(t, analysis.TotalScore, 0)
	assert.LessOrEqual(t, analysis.TotalScore, 100)
	assert.NotEmpty(t, analysis.ATS.Details)
}

func TestHandleAnalyze_RequiresText(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/analyze", AnalyzeRequest{RoleTitle: "PM"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestID_HeaderSet(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "text", Message: "required"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
