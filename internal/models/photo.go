package models

import "time"

// Photo is the database shape of an attached photo. Image bytes live in bytea
// columns; EntryID links back to the owning journal entry.
type Photo struct {
	PhotoID       string    `json:"photoID"`
	EntryID       string    `json:"entryID"`
	ImageData     []byte    `json:"-"`
	ThumbnailData []byte    `json:"-"`
	Caption       *string   `json:"caption"`
	TakenAt       time.Time `json:"takenAt"`
	FileSize      int64     `json:"fileSize"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
}
