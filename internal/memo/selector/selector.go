// Package selector holds the read side of the memo API: lookups by id,
// with row absence translated into domain not-found errors and notes
// embedded into the sections they belong to.
package selector

import (
	"context"
	"errors"

	"github.com/memoboard/memo-backend/internal/memo/domain"
	"github.com/memoboard/memo-backend/internal/memo/repository"
)

type Selector struct {
	store repository.Store
}

func New(store repository.Store) *Selector {
	return &Selector{store: store}
}

// SelectSections returns all sections ordered by id when id is nil, or a
// one-element list for the given id. Notes are embedded in full.
func (s *Selector) SelectSections(ctx context.Context, id *int64) ([]domain.Section, error) {
	if id != nil {
		sec, err := s.PickSection(ctx, *id)
		if err != nil {
			return nil, err
		}
		return []domain.Section{*sec}, nil
	}

	sections, err := s.store.ListSections(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.store.ListAllNotes(ctx)
	if err != nil {
		return nil, err
	}

	bySection := make(map[int64][]domain.Note, len(sections))
	for _, n := range notes {
		bySection[n.SectionID] = append(bySection[n.SectionID], n)
	}
	for i := range sections {
		sections[i].Notes = bySection[sections[i].ID]
		if sections[i].Notes == nil {
			sections[i].Notes = []domain.Note{}
		}
	}
	return sections, nil
}

// SelectNotes returns the notes under sectionID, optionally narrowed to
// noteID. A noteID that matches nothing under that section is not found,
// whether the note is absent or lives in another section.
func (s *Selector) SelectNotes(ctx context.Context, sectionID int64, noteID *int64) ([]domain.Note, error) {
	if noteID != nil {
		n, err := s.PickNote(ctx, sectionID, *noteID)
		if err != nil {
			return nil, err
		}
		return []domain.Note{*n}, nil
	}

	if _, err := s.PickSection(ctx, sectionID); err != nil {
		return nil, err
	}
	return s.store.ListNotes(ctx, sectionID)
}

// PickSection returns exactly one section, notes embedded.
func (s *Selector) PickSection(ctx context.Context, id int64) (*domain.Section, error) {
	sec, err := s.store.GetSection(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotExist) {
			return nil, domain.SectionNotFound(id)
		}
		return nil, err
	}
	notes, err := s.store.ListNotes(ctx, id)
	if err != nil {
		return nil, err
	}
	sec.Notes = notes
	if sec.Notes == nil {
		sec.Notes = []domain.Note{}
	}
	return sec, nil
}

// PickNote returns exactly one note. Section scoping is enforced as if a
// note outside the addressed section were simply not there.
func (s *Selector) PickNote(ctx context.Context, sectionID, noteID int64) (*domain.Note, error) {
	n, err := s.store.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotExist) {
			return nil, domain.NoteNotFound(noteID)
		}
		return nil, err
	}
	if n.SectionID != sectionID {
		return nil, domain.NoteNotInSection(noteID, sectionID)
	}
	return n, nil
}
