package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/memoboard/memo-backend/internal/memo/domain"
)

// MemoryStore is a map-backed Store used by tests and local runs without
// a database. Ids are monotonic and never reused, and deleting a section
// cascades to its notes, mirroring the Postgres schema.
type MemoryStore struct {
	mu       sync.RWMutex
	sections map[int64]domain.Section
	notes    map[int64]domain.Note
	nextSec  int64
	nextNote int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sections: make(map[int64]domain.Section),
		notes:    make(map[int64]domain.Note),
		nextSec:  1,
		nextNote: 1,
	}
}

func (s *MemoryStore) ListSections(_ context.Context) ([]domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		out = append(out, sec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetSection(_ context.Context, id int64) (*domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sec, ok := s.sections[id]
	if !ok {
		return nil, ErrNotExist
	}
	return &sec, nil
}

func (s *MemoryStore) CreateSection(_ context.Context, name string) (*domain.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := domain.Section{ID: s.nextSec, Name: name}
	s.nextSec++
	s.sections[sec.ID] = sec
	return &sec, nil
}

func (s *MemoryStore) UpdateSection(_ context.Context, id int64, name string) (*domain.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, ok := s.sections[id]
	if !ok {
		return nil, ErrNotExist
	}
	sec.Name = name
	s.sections[id] = sec
	return &sec, nil
}

func (s *MemoryStore) DeleteSection(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sections[id]; !ok {
		return false, nil
	}
	delete(s.sections, id)
	for noteID, n := range s.notes {
		if n.SectionID == id {
			delete(s.notes, noteID)
		}
	}
	return true, nil
}

func (s *MemoryStore) ListNotes(_ context.Context, sectionID int64) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Note, 0, 8)
	for _, n := range s.notes {
		if n.SectionID == sectionID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListAllNotes(_ context.Context) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetNote(_ context.Context, id int64) (*domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	if !ok {
		return nil, ErrNotExist
	}
	return &n, nil
}

func (s *MemoryStore) CreateNote(_ context.Context, n domain.Note) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sections[n.SectionID]; !ok {
		return nil, ErrSectionMissing
	}
	n.ID = s.nextNote
	s.nextNote++
	s.notes[n.ID] = n
	return &n, nil
}

func (s *MemoryStore) UpdateNote(_ context.Context, n domain.Note) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.notes[n.ID]
	if !ok {
		return nil, ErrNotExist
	}
	stored.Name = n.Name
	stored.URL = n.URL
	stored.Description = n.Description
	s.notes[n.ID] = stored
	return &stored, nil
}

func (s *MemoryStore) DeleteNote(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return false, nil
	}
	delete(s.notes, id)
	return true, nil
}
