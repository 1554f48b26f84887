// Package serializer validates inbound field sets and turns them into
// candidate entity states. One routine per entity handles both create
// and edit; the partial flag decides whether absent fields are an error
// or mean "keep the stored value".
package serializer

import (
	"fmt"
	"strconv"

	"github.com/memoboard/memo-backend/internal/memo/domain"
)

const (
	MaxNameLen = 300
	MaxURLLen  = 500
)

// SectionData is the wire shape of a section write. Pointer fields keep
// "absent" distinguishable from "empty".
type SectionData struct {
	Name *string `json:"name"`
}

// String renders the supplied fields so validation errors echo what the
// client actually sent, with absent fields marked as such.
func (d SectionData) String() string {
	return fmt.Sprintf("{name: %s}", fmtField(d.Name))
}

// NoteData is the wire shape of a note write. SectionID is injected by
// the service from the request path, never trusted from the body.
type NoteData struct {
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	SectionID   *int64  `json:"-"`
}

func (d NoteData) String() string {
	return fmt.Sprintf("{name: %s, url: %s, description: %s, section_id: %s}",
		fmtField(d.Name), fmtField(d.URL), fmtField(d.Description), fmtID(d.SectionID))
}

func fmtField(p *string) string {
	if p == nil {
		return "<absent>"
	}
	return strconv.Quote(*p)
}

func fmtID(p *int64) string {
	if p == nil {
		return "<absent>"
	}
	return strconv.FormatInt(*p, 10)
}

// ValidateSection builds the next section state from data. With partial
// unset, name must be present; either way it must be non-empty and
// within bounds when supplied.
func ValidateSection(existing *domain.Section, data SectionData, partial bool) (domain.Section, error) {
	var next domain.Section
	if existing != nil {
		next = *existing
	}

	if data.Name == nil {
		if !partial {
			return domain.Section{}, domain.NotValid(data, "name is required")
		}
	} else {
		if *data.Name == "" {
			return domain.Section{}, domain.NotValid(data, "name must not be empty")
		}
		if len(*data.Name) > MaxNameLen {
			return domain.Section{}, domain.NotValid(data, "name is too long")
		}
		next.Name = *data.Name
	}

	return next, nil
}

// ValidateNote builds the next note state from data, under the same
// full/partial contract as ValidateSection.
func ValidateNote(existing *domain.Note, data NoteData, partial bool) (domain.Note, error) {
	var next domain.Note
	if existing != nil {
		next = *existing
	}

	if data.Name == nil {
		if !partial {
			return domain.Note{}, domain.NotValid(data, "name is required")
		}
	} else {
		if *data.Name == "" {
			return domain.Note{}, domain.NotValid(data, "name must not be empty")
		}
		if len(*data.Name) > MaxNameLen {
			return domain.Note{}, domain.NotValid(data, "name is too long")
		}
		next.Name = *data.Name
	}

	if data.URL != nil {
		if len(*data.URL) > MaxURLLen {
			return domain.Note{}, domain.NotValid(data, "url is too long")
		}
		next.URL = *data.URL
	}

	if data.Description != nil {
		next.Description = *data.Description
	}

	if data.SectionID == nil {
		if !partial {
			return domain.Note{}, domain.NotValid(data, "section_id is required")
		}
	} else {
		if *data.SectionID <= 0 {
			return domain.Note{}, domain.NotValid(data, "section_id must be a positive integer")
		}
		next.SectionID = *data.SectionID
	}

	return next, nil
}
