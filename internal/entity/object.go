package entity

import "time"

// StoredObject describes one object in the media bucket. Name is the full
// key including any folder-style prefix; Filename is the part after the
// last '/'. Existence is authoritative at the bucket, never cached here.
type StoredObject struct {
	Name        string    `json:"name"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
