package util

import "errors"

var (
	ErrDocumentUnavailable = errors.New("study document missing or unreadable")
	ErrTopicNotFound       = errors.New("topic not found")
	ErrNoAnswers           = errors.New("no answers provided")
	ErrCardNotFound        = errors.New("flashcard not found")
	ErrInvalidResponse     = errors.New("response must be correct or incorrect")
	ErrNoteIDRequired      = errors.New("note ID required")
	ErrBookmarkIDRequired  = errors.New("bookmark ID required")
)
