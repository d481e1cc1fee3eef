package models

import "time"

// Note is a text note owned by exactly one account.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`

	// OwnerID is set from the authenticated identity on creation and is
	// never serialised nor accepted from request bodies.
	OwnerID string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate carries the optional fields of a note update.
// A nil field is left unchanged.
type NoteUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Pinned  *bool   `json:"pinned,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Pinned == nil
}
