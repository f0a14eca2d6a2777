package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bat-go/internal/models"
	"bat-go/internal/repository"
	"bat-go/internal/scoring"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 10
const maxHistoryLimit = 100

type AssessmentHandler struct {
	log        *zap.Logger
	Instrument *models.Instrument
}

func NewAssessmentHandler(log *zap.Logger, instrument *models.Instrument) *AssessmentHandler {
	return &AssessmentHandler{log: log, Instrument: instrument}
}

type submitRequest struct {
	Responses []int64 `json:"responses"`
}

// Questions returns the instrument definition so a client can render
// the questionnaire in scoring order.
func (h *AssessmentHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Instrument)
}

// Submit validates a response vector, scores it and persists the
// resulting record. Validation failures never reach the database.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Failed to bind submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := scoring.ValidateResponses(req.Responses); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := &models.AssessmentRecord{
		UserID:    user.ID,
		Responses: pq.Int64Array(req.Responses),
		Result:    scoring.Score(req.Responses),
	}

	if err := repository.CreateAssessment(c.Request.Context(), record); err != nil {
		h.log.Error("Failed to save assessment", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Latest returns the most recent record for the session user.
func (h *AssessmentHandler) Latest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := repository.GetLatestAssessment(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No assessment found"})
			return
		}
		h.log.Error("Failed to load latest assessment", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// History returns up to ?limit= records, newest first (default 10).
func (h *AssessmentHandler) History(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := repository.GetAssessmentHistory(c.Request.Context(), user.ID, limit)
	if err != nil {
		h.log.Error("Failed to load assessment history", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Trend returns every record oldest-first, projected to the overall
// score, its risk level and the creation timestamp.
func (h *AssessmentHandler) Trend(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	points, err := repository.GetAssessmentTrend(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load assessment trend", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, points)
}
