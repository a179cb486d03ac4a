package repository

import (
	"context"
	"encoding/hex"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"notes-backend/domain"
)

// Memory is a process-lifetime, map-backed NotesRepository. A single
// instance is shared across all requests; every operation holds the lock
// for its full duration, which is enough because no operation blocks or
// suspends.
//
// IDs are 128-bit random tokens rendered as 32 hex characters. Collisions
// are not handled: at that probability space a duplicate would indicate a
// broken entropy source, not a reachable state.
type Memory struct {
	mu    sync.RWMutex
	notes map[string]domain.Note
}

var _ NotesRepository = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{notes: make(map[string]domain.Note)}
}

func newID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func (m *Memory) List(ctx context.Context) ([]domain.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	notes := make([]domain.Note, 0, len(m.notes))
	for _, n := range m.notes {
		notes = append(notes, n)
	}
	// updated_at descending; equal timestamps fall back to id so the
	// order never flaps between calls.
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].UpdatedAt.Equal(notes[j].UpdatedAt) {
			return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
		}
		return notes[i].ID < notes[j].ID
	})
	return notes, nil
}

func (m *Memory) Get(ctx context.Context, id string) (*domain.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.notes[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (m *Memory) Create(ctx context.Context, payload domain.NoteCreate) (domain.Note, error) {
	now := time.Now().UTC()
	note := domain.Note{
		ID:        newID(),
		Title:     payload.Title,
		Content:   payload.Content,
		Tags:      payload.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.notes[note.ID] = note
	m.mu.Unlock()

	return note, nil
}

func (m *Memory) Update(ctx context.Context, id string, payload domain.NoteUpdate) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	note, ok := m.notes[id]
	if !ok {
		return nil, nil
	}
	mergeNote(&note, payload)
	note.UpdatedAt = time.Now().UTC()
	m.notes[id] = note
	return &note, nil
}

func (m *Memory) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return false, nil
	}
	delete(m.notes, id)
	return true, nil
}

// mergeNote applies the present fields of payload onto note. Absent fields
// keep their stored value; an explicit empty tags list replaces the stored
// one, an absent tags field does not.
func mergeNote(note *domain.Note, payload domain.NoteUpdate) {
	if payload.Title != nil {
		note.Title = *payload.Title
	}
	if payload.Content != nil {
		note.Content = *payload.Content
	}
	if payload.Tags != nil {
		note.Tags = *payload.Tags
	}
}
