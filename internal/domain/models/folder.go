package models

import (
	"time"
)

type Folder struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	DocumentCount int       `json:"document_count"` // Computed per request, not stored
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
