package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// NoteValidationService checks note input and the caller identity before
// delegating to the wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

var validatorErrors = []struct {
	from error
	to   error
}{
	{validators.ErrEmptyOwnerID, ErrUnauthenticated},
	{validators.ErrEmptyTitle, ErrEmptyTitle},
	{validators.ErrEmptyContent, ErrEmptyContent},
	{validators.ErrNoFieldsToUpdate, ErrNothingToUpdate},
}

func (v *NoteValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	err := v.validator.Validate(ctx, obj, fields...)
	if err == nil {
		return nil
	}
	for _, m := range validatorErrors {
		if errors.Is(err, m.from) {
			return m.to
		}
	}
	return err
}

func (v *NoteValidationService) checkOwner(ctx context.Context, ownerID string) error {
	return v.validate(ctx, models.Note{OwnerID: ownerID}, validators.FieldOwnerID)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	if err := v.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return v.inner.ListNotes(ctx, ownerID)
}

func (v *NoteValidationService) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	if err := v.checkOwner(ctx, ownerID); err != nil {
		return models.Note{}, err
	}
	return v.inner.GetNote(ctx, ownerID, noteID)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, ownerID string, request models.CreateNoteRequest) (models.Note, error) {
	if err := v.checkOwner(ctx, ownerID); err != nil {
		return models.Note{}, err
	}
	if err := v.validate(ctx, request); err != nil {
		return models.Note{}, err
	}

	return v.inner.CreateNote(ctx, ownerID, request)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error) {
	if err := v.checkOwner(ctx, ownerID); err != nil {
		return models.Note{}, err
	}
	if err := v.validate(ctx, update); err != nil {
		return models.Note{}, err
	}

	return v.inner.UpdateNote(ctx, ownerID, noteID, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if err := v.checkOwner(ctx, ownerID); err != nil {
		return err
	}
	return v.inner.DeleteNote(ctx, ownerID, noteID)
}
