package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/memoboard/memo-backend/internal/memo/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS sections (
    id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name VARCHAR(300) NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name        VARCHAR(300) NOT NULL,
    url         VARCHAR(500) NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    section_id  BIGINT NOT NULL REFERENCES sections (id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_notes_section ON notes (section_id);
`

// PostgresStore implements Store on top of database/sql. Referential
// integrity and cascade delete are enforced by the schema's foreign key.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the tables if they are not there yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *PostgresStore) ListSections(ctx context.Context) ([]domain.Section, error) {
	const q = `
SELECT id, name
FROM sections
ORDER BY id;
`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Section, 0, 16)
	for rows.Next() {
		var sec domain.Section
		if err := rows.Scan(&sec.ID, &sec.Name); err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) GetSection(ctx context.Context, id int64) (*domain.Section, error) {
	const q = `
SELECT id, name
FROM sections
WHERE id = $1;
`
	var sec domain.Section
	err := s.db.QueryRowContext(ctx, q, id).Scan(&sec.ID, &sec.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return &sec, nil
}

func (s *PostgresStore) CreateSection(ctx context.Context, name string) (*domain.Section, error) {
	const q = `
INSERT INTO sections (name)
VALUES ($1)
RETURNING id, name;
`
	var sec domain.Section
	if err := s.db.QueryRowContext(ctx, q, name).Scan(&sec.ID, &sec.Name); err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *PostgresStore) UpdateSection(ctx context.Context, id int64, name string) (*domain.Section, error) {
	const q = `
UPDATE sections
SET name = $2
WHERE id = $1
RETURNING id, name;
`
	var sec domain.Section
	err := s.db.QueryRowContext(ctx, q, id, name).Scan(&sec.ID, &sec.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return &sec, nil
}

func (s *PostgresStore) DeleteSection(ctx context.Context, id int64) (bool, error) {
	const q = `
DELETE FROM sections
WHERE id = $1;
`
	result, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *PostgresStore) ListNotes(ctx context.Context, sectionID int64) ([]domain.Note, error) {
	const q = `
SELECT id, name, url, description, section_id
FROM notes
WHERE section_id = $1
ORDER BY id;
`
	rows, err := s.db.QueryContext(ctx, q, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotes(rows)
}

func (s *PostgresStore) ListAllNotes(ctx context.Context) ([]domain.Note, error) {
	const q = `
SELECT id, name, url, description, section_id
FROM notes
ORDER BY id;
`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotes(rows)
}

func (s *PostgresStore) GetNote(ctx context.Context, id int64) (*domain.Note, error) {
	const q = `
SELECT id, name, url, description, section_id
FROM notes
WHERE id = $1;
`
	var n domain.Note
	err := s.db.QueryRowContext(ctx, q, id).
		Scan(&n.ID, &n.Name, &n.URL, &n.Description, &n.SectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return &n, nil
}

func (s *PostgresStore) CreateNote(ctx context.Context, n domain.Note) (*domain.Note, error) {
	const q = `
INSERT INTO notes (name, url, description, section_id)
VALUES ($1, $2, $3, $4)
RETURNING id, name, url, description, section_id;
`
	var created domain.Note
	err := s.db.QueryRowContext(ctx, q, n.Name, n.URL, n.Description, n.SectionID).
		Scan(&created.ID, &created.Name, &created.URL, &created.Description, &created.SectionID)
	if err != nil {
		// foreign key violation → the section is gone
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrSectionMissing
		}
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateNote(ctx context.Context, n domain.Note) (*domain.Note, error) {
	const q = `
UPDATE notes
SET name = $2, url = $3, description = $4
WHERE id = $1
RETURNING id, name, url, description, section_id;
`
	var updated domain.Note
	err := s.db.QueryRowContext(ctx, q, n.ID, n.Name, n.URL, n.Description).
		Scan(&updated.ID, &updated.Name, &updated.URL, &updated.Description, &updated.SectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteNote(ctx context.Context, id int64) (bool, error) {
	const q = `
DELETE FROM notes
WHERE id = $1;
`
	result, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanNotes(rows *sql.Rows) ([]domain.Note, error) {
	out := make([]domain.Note, 0, 16)
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Name, &n.URL, &n.Description, &n.SectionID); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
