package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

const maxTitleLength = 200

// Note is a stored note. Tags distinguishes "no tags" (nil, serialized as
// null) from an explicitly empty list.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteCreate is the payload for creating a note. Handlers validate it
// before it reaches a repository; repositories trust it as-is.
type NoteCreate struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// NoteUpdate is a partial update. A nil field means "leave unchanged"; a
// non-nil empty Tags slice explicitly clears the tags.
type NoteUpdate struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

var (
	ErrTitleLength     = errors.New("title must be between 1 and 200 characters")
	ErrContentRequired = errors.New("content must not be empty")
)

func validTitle(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= maxTitleLength
}

func (p NoteCreate) Validate() error {
	if !validTitle(p.Title) {
		return ErrTitleLength
	}
	if p.Content == "" {
		return ErrContentRequired
	}
	return nil
}

func (p NoteUpdate) Validate() error {
	if p.Title != nil && !validTitle(*p.Title) {
		return ErrTitleLength
	}
	if p.Content != nil && *p.Content == "" {
		return ErrContentRequired
	}
	return nil
}
