package models

import (
	"time"
)

type Folder struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FolderWithLinks is a folder together with its links, newest first.
// Folder fields are flattened into the same JSON object.
type FolderWithLinks struct {
	Folder
	Links []Link `json:"links"`
}
