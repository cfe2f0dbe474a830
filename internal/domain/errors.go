package domain

import "errors"

var (
	// ErrTranslation means quiz words could not be translated
	ErrTranslation = errors.New("an error occurred while translating words")
	// ErrAudioFetch means pronunciation audio could not be fetched
	ErrAudioFetch = errors.New("an error occurred while fetching audio")
	// ErrLengthMismatch means scored answer lists differ in size
	ErrLengthMismatch = errors.New("answer lengths do not match")
)
