package domain

// Tag is a user-defined label attached to journal entries.
// Uniqueness by TagID is enforced by the repository layer.
type Tag struct {
	TagID string `json:"tagID"` // Primary Key (UUID)
	Name  string `json:"name"`
	Color string `json:"color"` // Hex string, e.g. "#4ECDC4"
}
