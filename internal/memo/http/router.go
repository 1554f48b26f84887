package http

import "github.com/gin-gonic/gin"

// Register attaches memo routes to the given router. Every route runs
// behind the method gate; each path is registered for all verbs so the
// gate, not the routing tree, decides what 405s.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/sections", MethodGate())
	g.Any("/", h.sections)
	g.Any("/:id/", h.section)
	g.Any("/:id/notes/", h.notes)
	g.Any("/:id/notes/:nid/", h.note)
}
