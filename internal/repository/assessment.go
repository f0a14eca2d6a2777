package repository

import (
	"context"
	"time"

	"bat-go/internal/database"
	"bat-go/internal/models"
)

// CreateAssessment persists one scored submission. Records are
// append-only; nothing ever updates or deletes them.
func CreateAssessment(ctx context.Context, record *models.AssessmentRecord) error {
	return database.DB.WithContext(ctx).Create(record).Error
}

// GetLatestAssessment returns the most recent record for a user, or
// gorm.ErrRecordNotFound if they have never submitted.
func GetLatestAssessment(ctx context.Context, userID uint) (*models.AssessmentRecord, error) {
	var record models.AssessmentRecord
	result := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&record)
	return &record, result.Error
}

// GetAssessmentHistory returns up to limit records for a user, newest first.
func GetAssessmentHistory(ctx context.Context, userID uint, limit int) ([]models.AssessmentRecord, error) {
	var records []models.AssessmentRecord
	result := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records)
	return records, result.Error
}

// TrendPoint is the projection served by the trend endpoint: just the
// overall score, its risk level and when it was recorded.
type TrendPoint struct {
	TotalBATScore float64   `json:"totalBATScore"`
	RiskLevel     string    `json:"riskLevel"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GetAssessmentTrend returns every record for a user projected to
// trend points, oldest first.
func GetAssessmentTrend(ctx context.Context, userID uint) ([]TrendPoint, error) {
	var points []TrendPoint
	err := database.DB.WithContext(ctx).
		Model(&models.AssessmentRecord{}).
		Select("total_bat_score", "risk_level", "created_at").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Scan(&points).Error
	return points, err
}
