package model

import "errors"

var (
	ErrMissingQuery    = errors.New("missing query argument")
	ErrMissingFilePath = errors.New("missing file path argument")
	ErrInvalidPattern  = errors.New("invalid regex pattern")
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// IsConfigError reports whether err comes from missing positional arguments.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingQuery) || errors.Is(err, ErrMissingFilePath)
}
