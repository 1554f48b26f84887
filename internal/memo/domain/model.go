package domain

import "fmt"

// Section is a top-level grouping of notes. Notes are embedded in full
// whenever a section crosses the wire.
type Section struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Notes []Note `json:"notes"`
}

// Note belongs to exactly one section.
type Note struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	SectionID   int64  `json:"section_id"`
}

// NotFoundError covers both "the entity does not exist" and "the entity
// exists outside the addressed section". The wire contract does not
// distinguish the two causes.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func SectionNotFound(id int64) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("section `%d` does not exist", id)}
}

func NoteNotFound(id int64) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("note `%d` does not exist", id)}
}

func NoteNotInSection(noteID, sectionID int64) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("note `%d` not in section `%d`", noteID, sectionID)}
}

// ValidationError carries the offending data alongside the reason.
type ValidationError struct {
	Data   any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("data `%v` is not valid: %s", e.Data, e.Reason)
}

func NotValid(data any, reason string) *ValidationError {
	return &ValidationError{Data: data, Reason: reason}
}
