package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID              = errors.New("identifier is required")
	ErrTitleTooLong         = errors.New("title is too long")
	ErrTextTooLong          = errors.New("text is too long")
	ErrInvalidTarget        = errors.New("invalid placement target")
	ErrMissingTargetTreeID  = errors.New("target note tree id is required for target \"after\"")
	ErrUnexpectedTargetTree = errors.New("target note tree id is only allowed with target \"after\"")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrEmptyImageData       = errors.New("image data is required")
	ErrImageTooLarge        = errors.New("image is too large")
	ErrInvalidMime          = errors.New("image mime type must be image/*")
)
