package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOwnerID     = errors.New("owner ID is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
