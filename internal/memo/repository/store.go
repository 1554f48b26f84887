package repository

import (
	"context"
	"errors"

	"github.com/memoboard/memo-backend/internal/memo/domain"
)

// ErrNotExist is returned when a lookup by id matches no row.
var ErrNotExist = errors.New("no such row")

// ErrSectionMissing is returned when a note write references a section
// that does not exist. The store surfaces it so the service layer can
// report the write as invalid data rather than a lookup failure.
var ErrSectionMissing = errors.New("referenced section does not exist")

// Store is the persistence contract for sections and notes. Deleting a
// section removes its notes as well; implementations never reuse ids.
type Store interface {
	ListSections(ctx context.Context) ([]domain.Section, error)
	GetSection(ctx context.Context, id int64) (*domain.Section, error)
	CreateSection(ctx context.Context, name string) (*domain.Section, error)
	UpdateSection(ctx context.Context, id int64, name string) (*domain.Section, error)
	DeleteSection(ctx context.Context, id int64) (bool, error)

	ListNotes(ctx context.Context, sectionID int64) ([]domain.Note, error)
	ListAllNotes(ctx context.Context) ([]domain.Note, error)
	GetNote(ctx context.Context, id int64) (*domain.Note, error)
	CreateNote(ctx context.Context, n domain.Note) (*domain.Note, error)
	UpdateNote(ctx context.Context, n domain.Note) (*domain.Note, error)
	DeleteNote(ctx context.Context, id int64) (bool, error)
}
