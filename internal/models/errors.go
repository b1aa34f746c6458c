package models

import "errors"

var (
	// ErrUnsupportedMediaType is returned for uploads outside the audio
	// allow-list.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrPayloadTooLarge is returned for uploads over the configured limit.
	ErrPayloadTooLarge = errors.New("file too large")

	// ErrGenerationEmpty is returned when the chat completion comes back
	// without any content. It is a hard error and is never retried.
	ErrGenerationEmpty = errors.New("no content generated")
)
