// Package service orchestrates memo writes: look up, validate, persist.
package service

import (
	"context"
	"errors"

	"github.com/memoboard/memo-backend/internal/memo/domain"
	"github.com/memoboard/memo-backend/internal/memo/repository"
	"github.com/memoboard/memo-backend/internal/memo/selector"
	"github.com/memoboard/memo-backend/internal/memo/serializer"
)

// DoneMessage is the opaque success string delete operations report.
const DoneMessage = "done"

type Service struct {
	store repository.Store
	sel   *selector.Selector
}

func New(store repository.Store, sel *selector.Selector) *Service {
	return &Service{store: store, sel: sel}
}

// CreateSection validates data as a full create and persists it.
func (s *Service) CreateSection(ctx context.Context, data serializer.SectionData) (*domain.Section, error) {
	candidate, err := serializer.ValidateSection(nil, data, false)
	if err != nil {
		return nil, err
	}
	created, err := s.store.CreateSection(ctx, candidate.Name)
	if err != nil {
		return nil, err
	}
	created.Notes = []domain.Note{}
	return created, nil
}

// EditSection updates a section. Section edits are full updates: every
// field must be supplied, unlike note edits.
func (s *Service) EditSection(ctx context.Context, id int64, data serializer.SectionData) (*domain.Section, error) {
	existing, err := s.sel.PickSection(ctx, id)
	if err != nil {
		return nil, err
	}
	candidate, err := serializer.ValidateSection(existing, data, false)
	if err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateSection(ctx, id, candidate.Name)
	if err != nil {
		if errors.Is(err, repository.ErrNotExist) {
			return nil, domain.SectionNotFound(id)
		}
		return nil, err
	}
	updated.Notes = existing.Notes
	return updated, nil
}

// DeleteSection removes a section; the store cascades to its notes.
func (s *Service) DeleteSection(ctx context.Context, id int64) (string, error) {
	if _, err := s.sel.PickSection(ctx, id); err != nil {
		return "", err
	}
	if _, err := s.store.DeleteSection(ctx, id); err != nil {
		return "", err
	}
	return DoneMessage, nil
}

// CreateNote validates data as a full create with the section id taken
// from the request path. A dangling section id is invalid data, not a
// lookup failure.
func (s *Service) CreateNote(ctx context.Context, sectionID int64, data serializer.NoteData) (*domain.Note, error) {
	data.SectionID = &sectionID
	if data.URL == nil {
		empty := ""
		data.URL = &empty
	}
	if data.Description == nil {
		empty := ""
		data.Description = &empty
	}
	candidate, err := serializer.ValidateNote(nil, data, false)
	if err != nil {
		return nil, err
	}
	created, err := s.store.CreateNote(ctx, candidate)
	if err != nil {
		if errors.Is(err, repository.ErrSectionMissing) {
			return nil, domain.NotValid(data, "section does not exist")
		}
		return nil, err
	}
	return created, nil
}

// EditNote updates a note. Note edits are partial: absent fields keep
// their stored values.
func (s *Service) EditNote(ctx context.Context, sectionID, noteID int64, data serializer.NoteData) (*domain.Note, error) {
	existing, err := s.sel.PickNote(ctx, sectionID, noteID)
	if err != nil {
		return nil, err
	}
	candidate, err := serializer.ValidateNote(existing, data, true)
	if err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateNote(ctx, candidate)
	if err != nil {
		if errors.Is(err, repository.ErrNotExist) {
			return nil, domain.NoteNotFound(noteID)
		}
		return nil, err
	}
	return updated, nil
}

// DeleteNote removes a single note from the addressed section.
func (s *Service) DeleteNote(ctx context.Context, sectionID, noteID int64) (string, error) {
	if _, err := s.sel.PickNote(ctx, sectionID, noteID); err != nil {
		return "", err
	}
	if _, err := s.store.DeleteNote(ctx, noteID); err != nil {
		return "", err
	}
	return DoneMessage, nil
}
