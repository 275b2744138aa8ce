package models

import (
	"time"
)

type Document struct {
	ID        string    `json:"id" db:"id"`
	Title     *string   `json:"title" db:"title"`         // Derived from content; NULL when no heading
	Content   string    `json:"content" db:"content"`     // Markdown content
	FolderID  *string   `json:"folder_id" db:"folder_id"` // NULL = unfiled (root)
	ShareID   string    `json:"share_id,omitempty" db:"share_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DocumentListItem is the list-view projection of a document. The full
// content never travels through list payloads, only a short preview.
type DocumentListItem struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	Preview   string    `json:"preview"`
	FolderID  *string   `json:"folder_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentPage is one page of a document listing.
type DocumentPage struct {
	Documents []DocumentListItem `json:"documents"`
	HasMore   bool               `json:"has_more"`
}

// SharedDocument is the read-only view resolved from a share token.
// It deliberately carries no ids and no updated_at.
type SharedDocument struct {
	Title     *string   `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FilterScope selects which folder slice of the document set a listing covers.
type FilterScope int

const (
	FilterAll    FilterScope = iota // no folder filter
	FilterRoot                      // unfiled documents only (folder_id IS NULL)
	FilterFolder                    // documents in one specific folder
)

// FolderFilter scopes a document listing to a folder, to the unfiled
// root, or to the whole set.
type FolderFilter struct {
	Scope    FilterScope
	FolderID string // set only when Scope == FilterFolder
}
