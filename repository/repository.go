// Package repository isolates note persistence behind a single interface so
// the HTTP layer stays storage-agnostic. Memory is the default backend;
// Postgres is the durable one.
package repository

import (
	"context"

	"notes-backend/domain"
)

// NotesRepository is the persistence contract for notes.
//
// Not-found is an absent result, not an error: Get and Update return
// (nil, nil) and Delete returns (false, nil) for an unknown id. The error
// value is reserved for storage faults.
type NotesRepository interface {
	// List returns all live notes, most recently updated first.
	List(ctx context.Context) ([]domain.Note, error)

	// Get returns the note with the given id, or nil if it does not exist.
	Get(ctx context.Context, id string) (*domain.Note, error)

	// Create persists a new note from an already-validated payload,
	// assigning a fresh id and setting both timestamps.
	Create(ctx context.Context, payload domain.NoteCreate) (domain.Note, error)

	// Update applies the present fields of payload to the stored note and
	// refreshes updated_at, preserving id and created_at. Returns nil if
	// the id does not exist.
	Update(ctx context.Context, id string, payload domain.NoteUpdate) (*domain.Note, error)

	// Delete removes the note. Returns false if the id did not exist;
	// deleting a missing note is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
