package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchLog counts how often a keyword is searched. One row per
// keyword, upserted asynchronously by the search endpoint.
type SearchLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Keyword      string    `json:"keyword" gorm:"type:varchar(255);not null;uniqueIndex"`
	SearchCount  int       `json:"searchCount" gorm:"default:1"`
	LastSearched time.Time `json:"lastSearched" gorm:"autoUpdateTime"`
}

func (SearchLog) TableName() string {
	return "search_logs"
}

func (s *SearchLog) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
