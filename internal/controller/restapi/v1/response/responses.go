package response

import "github.com/avdeev/courtside-media/internal/entity"

type Error struct {
	Error string `json:"error"`
}

type UploadImage struct {
	Status   string `json:"status"`
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

type UploadVideo struct {
	VideoURL      string        `json:"video_url"`
	Filename      string        `json:"filename"`
	TennisLabels  []string      `json:"tennis_labels"`
	TennisObjects []string      `json:"tennis_objects"`
	Shots         []entity.Shot `json:"shots"`
}

type SignedURL struct {
	ImageURL string `json:"image_url"`
}

type DeleteFile struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type FileList struct {
	Status     string                `json:"status"`
	Folder     string                `json:"folder"`
	FileCount  int                   `json:"file_count"`
	MaxResults int                   `json:"max_results"`
	Files      []entity.StoredObject `json:"files"`
}

type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	UserCount int64  `json:"user_count"`
}
