package domain

import (
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/utils/textfmt"
)

// Photo is an image attached to a journal entry. ImageData holds the processed
// full-resolution JPEG; ThumbnailData is a downscaled copy and may be nil for
// photos imported before thumbnailing existed.
type Photo struct {
	PhotoID       string     `json:"photoID"` // Primary Key (UUID)
	ImageData     []byte     `json:"-"`
	ThumbnailData []byte     `json:"-"`
	Caption       *string    `json:"caption"`
	TakenAt       time.Time  `json:"takenAt"`
	FileSize      int64      `json:"fileSize"` // bytes of ImageData
	Width         int        `json:"width"`    // pixels
	Height        int        `json:"height"`   // pixels
}

// AspectRatio returns width/height, defaulting to 1 when height is unknown.
func (p Photo) AspectRatio() float64 {
	if p.Height <= 0 {
		return 1.0
	}
	return float64(p.Width) / float64(p.Height)
}

// FileSizeFormatted renders the byte size in KB/MB units.
func (p Photo) FileSizeFormatted() string {
	return textfmt.HumanBytes(p.FileSize)
}
