package models

// Tag is the database shape of a tag. Entries link to tags through the
// entry_tags join table.
type Tag struct {
	TagID string `json:"tagID"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
