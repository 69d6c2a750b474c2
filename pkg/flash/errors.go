package flash

import "errors"

var (
	// ErrEmptyCollection indicates First was called on an empty collection
	ErrEmptyCollection = errors.New("flash.empty_collection")

	// ErrNoFlashData indicates the store holds no payload for the key
	ErrNoFlashData = errors.New("flash.no_data")

	// ErrInvalidFormats indicates a formats document could not be parsed
	ErrInvalidFormats = errors.New("flash.invalid_formats")

	// ErrParsingConfig indicates environment variables could not be parsed
	ErrParsingConfig = errors.New("flash.parsing_config_failed")
)
