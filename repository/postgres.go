package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"notes-backend/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Postgres implements NotesRepository over a pgx pool. Tags live in a jsonb
// column so the null-vs-empty-list distinction survives a round trip, and
// updates merge inside a transaction so the partial-update semantics are
// identical to the memory store's.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ NotesRepository = (*Postgres)(nil)

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Migrate applies the embedded schema migrations to the given database.
func Migrate(databaseURL string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	pg := &pgxmigrate.Postgres{}
	driver, err := pg.Open(databaseURL)
	if err != nil {
		return fmt.Errorf("open migration target: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "notes", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

const noteColumns = "id, title, content, tags, created_at, updated_at"

func scanNote(row pgx.Row) (domain.Note, error) {
	var n domain.Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return domain.Note{}, err
	}
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
	return n, nil
}

func (p *Postgres) List(ctx context.Context) ([]domain.Note, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (*domain.Note, error) {
	n, err := scanNote(p.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return &n, nil
}

func (p *Postgres) Create(ctx context.Context, payload domain.NoteCreate) (domain.Note, error) {
	now := time.Now().UTC()
	note := domain.Note{
		ID:        newID(),
		Title:     payload.Title,
		Content:   payload.Content,
		Tags:      payload.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO notes (id, title, content, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		note.ID, note.Title, note.Content, note.Tags, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.Note{}, fmt.Errorf("id collision on %s: %w", note.ID, err)
		}
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (p *Postgres) Update(ctx context.Context, id string, payload domain.NoteUpdate) (*domain.Note, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback(ctx)

	note, err := scanNote(tx.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read note for update: %w", err)
	}

	mergeNote(&note, payload)
	note.UpdatedAt = time.Now().UTC()

	_, err = tx.Exec(ctx,
		`UPDATE notes SET title = $2, content = $3, tags = $4, updated_at = $5 WHERE id = $1`,
		note.ID, note.Title, note.Content, note.Tags, note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return &note, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
