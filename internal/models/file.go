package models

import "time"

// File is the metadata row written for every uploaded blob.
type File struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Path      string    `json:"path" db:"path"`
	Size      int64     `json:"size" db:"size"`

	IsDownloadable bool `json:"is_downloadable" db:"-"`
}
