package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	FieldOwnerID = "owner_id"
	FieldTitle   = "title"
	FieldContent = "content"
)

// NoteValidator checks notes and note requests. Title and content must
// contain something other than whitespace.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.CreateNoteRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.NoteUpdate:
		return v.validateUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if note.OwnerID == "" {
				return ErrEmptyOwnerID
			}
		case FieldTitle:
			if isBlank(note.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(note.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *NoteValidator) validateCreateRequest(request models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(request.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(request.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateUpdate requires at least one field; fields that are present
// follow the same rules as on creation. The fields argument is ignored.
func (v *NoteValidator) validateUpdate(update models.NoteUpdate, _ ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Title != nil && isBlank(*update.Title) {
		return ErrEmptyTitle
	}
	if update.Content != nil && isBlank(*update.Content) {
		return ErrEmptyContent
	}
	return nil
}
