package models

import (
	"time"

	"bat-go/internal/scoring"

	"github.com/lib/pq"
)

// AssessmentRecord is one scored BAT submission. Records are written
// once on submission and never updated or deleted; history and trend
// reads return them as stored, without re-scoring.
type AssessmentRecord struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	// The raw 33-item response vector, in instrument order.
	Responses pq.Int64Array `gorm:"type:integer[]" json:"responses"`

	scoring.Result `gorm:"embedded"`

	CreatedAt time.Time `json:"createdAt"`
}
