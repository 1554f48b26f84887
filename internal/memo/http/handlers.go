package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/memoboard/memo-backend/internal/memo/domain"
	"github.com/memoboard/memo-backend/internal/memo/serializer"
)

// sections serves the collection path /sections/.
func (h *Handler) sections(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost:
		h.createSection(c)
	default:
		h.listSections(c)
	}
}

// section serves the item path /sections/:id/.
func (h *Handler) section(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	switch c.Request.Method {
	case http.MethodPatch:
		h.editSection(c, id)
	case http.MethodDelete:
		h.deleteSection(c, id)
	default:
		h.getSection(c, id)
	}
}

// notes serves the collection path /sections/:id/notes/.
func (h *Handler) notes(c *gin.Context) {
	sectionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	switch c.Request.Method {
	case http.MethodPost:
		h.createNote(c, sectionID)
	default:
		h.listNotes(c, sectionID)
	}
}

// note serves the item path /sections/:id/notes/:nid/.
func (h *Handler) note(c *gin.Context) {
	sectionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	noteID, ok := pathID(c, "nid")
	if !ok {
		return
	}
	switch c.Request.Method {
	case http.MethodPatch:
		h.editNote(c, sectionID, noteID)
	case http.MethodDelete:
		h.deleteNote(c, sectionID, noteID)
	default:
		h.getNote(c, sectionID, noteID)
	}
}

func (h *Handler) listSections(c *gin.Context) {
	sections, err := h.sel.SelectSections(c.Request.Context(), nil)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Detail: sections, Message: "ok"})
}

func (h *Handler) getSection(c *gin.Context, id int64) {
	sections, err := h.sel.SelectSections(c.Request.Context(), &id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Detail: sections, Message: "ok"})
}

func (h *Handler) createSection(c *gin.Context) {
	var data serializer.SectionData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Detail: nil, Message: "request body is not valid"})
		return
	}
	sec, err := h.svc.CreateSection(c.Request.Context(), data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, envelope{Detail: []domain.Section{*sec}, Message: "ok"})
}

func (h *Handler) editSection(c *gin.Context, id int64) {
	var data serializer.SectionData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Detail: nil, Message: "request body is not valid"})
		return
	}
	sec, err := h.svc.EditSection(c.Request.Context(), id, data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Detail: []domain.Section{*sec}, Message: "ok"})
}

func (h *Handler) deleteSection(c *gin.Context, id int64) {
	msg, err := h.svc.DeleteSection(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Detail: nil, Message: msg})
}

func (h *Handler) listNotes(c *gin.Context, sectionID int64) {
	notes, err := h.sel.SelectNotes(c.Request.Context(), sectionID, nil)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Detail: notes, Message: "ok"})
}

func (h *Handler) getNote(c *gin.Context, sectionID, noteID int64) {
	notes, err := h.sel.SelectNotes(c.Request.Context(), sectionID, &noteID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Detail: notes, Message: "ok"})
}

func (h *Handler) createNote(c *gin.Context, sectionID int64) {
	var data serializer.NoteData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Detail: nil, Message: "request body is not valid"})
		return
	}
	n, err := h.svc.CreateNote(c.Request.Context(), sectionID, data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, envelope{Detail: []domain.Note{*n}, Message: "ok"})
}

func (h *Handler) editNote(c *gin.Context, sectionID, noteID int64) {
	var data serializer.NoteData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Detail: nil, Message: "request body is not valid"})
		return
	}
	n, err := h.svc.EditNote(c.Request.Context(), sectionID, noteID, data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Detail: []domain.Note{*n}, Message: "ok"})
}

func (h *Handler) deleteNote(c *gin.Context, sectionID, noteID int64) {
	msg, err := h.svc.DeleteNote(c.Request.Context(), sectionID, noteID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Detail: nil, Message: msg})
}

// pathID parses a positive integer path parameter under the same
// ParseUint semantics the method gate classifies with, so a segment is
// either item-shaped and addressable or neither. A value that does not
// parse is unaddressable, so the response is a 404 envelope.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 63)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, envelope{Detail: nil, Message: "no such resource"})
		return 0, false
	}
	return int64(id), true
}

// fail maps domain errors onto the wire contract: NotFound → 404,
// ValidationError → 400, anything else → 500.
func fail(c *gin.Context, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, envelope{Detail: nil, Message: nf.Error()})
		return
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, envelope{Detail: nil, Message: ve.Error()})
		return
	}
	log.Printf("[memo] unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, envelope{Detail: nil, Message: "internal error"})
}
