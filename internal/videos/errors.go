package videos

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable indicates the metadata provider is not configured.
	ErrProviderUnavailable = errors.New("video metadata provider unavailable")

	// ErrInvalidInput is the only caller-visible failure class of metadata
	// resolution. Match it with errors.Is.
	ErrInvalidInput = errors.New("invalid video url")

	// ErrEmptyURL is returned when no URL was supplied.
	ErrEmptyURL = fmt.Errorf("%w: please enter a video URL", ErrInvalidInput)

	// ErrNoVideoID is returned when a URL looks like YouTube but carries no
	// extractable video identifier.
	ErrNoVideoID = fmt.Errorf("%w: could not extract a video id, please provide a valid YouTube URL", ErrInvalidInput)
)
