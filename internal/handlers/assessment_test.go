package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bat-go/internal/models"
	"bat-go/internal/scoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newTestRouter wires the assessment handler behind a middleware that
// injects user directly, standing in for the session user loader.
// Only routes that fail before touching the database are exercised here.
func newTestRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewAssessmentHandler(zap.NewNop(), &models.Instrument{
		Name:    "Burnout Assessment Tool",
		Version: "BAT-33",
	})

	inject := func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
		}
		c.Next()
	}

	r.GET("/api/questions", h.Questions)
	r.POST("/api/assessments", inject, h.Submit)
	r.GET("/api/assessments/history", inject, h.History)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuestionsEndpoint(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var instrument models.Instrument
	if err := json.Unmarshal(w.Body.Bytes(), &instrument); err != nil {
		t.Fatalf("response is not an instrument: %v", err)
	}
	if instrument.Version != "BAT-33" {
		t.Fatalf("version = %q, want BAT-33", instrument.Version)
	}
}

func TestSubmitRequiresUser(t *testing.T) {
	r := newTestRouter(nil)

	responses := make([]int64, scoring.NumItems)
	for i := range responses {
		responses[i] = 3
	}
	w := postJSON(r, "/api/assessments", gin.H{"responses": responses})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(&models.User{ID: 1})

	req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitRejectsWrongLength(t *testing.T) {
	r := newTestRouter(&models.User{ID: 1})

	for _, n := range []int{32, 34} {
		responses := make([]int64, n)
		for i := range responses {
			responses[i] = 3
		}
		w := postJSON(r, "/api/assessments", gin.H{"responses": responses})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("length %d: status = %d, want 400", n, w.Code)
		}
		if !strings.Contains(w.Body.String(), "33") {
			t.Fatalf("length %d: body %q does not name the expected length", n, w.Body.String())
		}
	}
}

func TestSubmitRejectsOutOfRangeValue(t *testing.T) {
	r := newTestRouter(&models.User{ID: 1})

	for _, bad := range []int64{0, 6} {
		responses := make([]int64, scoring.NumItems)
		for i := range responses {
			responses[i] = 3
		}
		responses[5] = bad
		w := postJSON(r, "/api/assessments", gin.H{"responses": responses})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("value %d: status = %d, want 400", bad, w.Code)
		}
		if !strings.Contains(w.Body.String(), "response 6") {
			t.Fatalf("value %d: body %q does not name the offending item", bad, w.Body.String())
		}
	}
}

func TestHistoryRejectsBadLimit(t *testing.T) {
	r := newTestRouter(&models.User{ID: 1})

	for _, limit := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/assessments/history?limit="+limit, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("limit %q: status = %d, want 400", limit, w.Code)
		}
	}
}
