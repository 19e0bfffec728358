package models

import (
	"time"
)

type Link struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	UserID    string    `json:"user"`
	FolderID  string    `json:"folder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LinkFilter narrows a link listing. Empty FolderID means all folders.
type LinkFilter struct {
	UserID   string
	FolderID string
}
