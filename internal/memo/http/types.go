package http

import (
	"github.com/memoboard/memo-backend/internal/memo/selector"
	"github.com/memoboard/memo-backend/internal/memo/service"
)

// Handler bundles the dependencies for memo HTTP endpoints.
type Handler struct {
	svc *service.Service
	sel *selector.Selector
}

func New(svc *service.Service, sel *selector.Selector) *Handler {
	return &Handler{svc: svc, sel: sel}
}

// envelope is the uniform response wrapper used for every API reply.
type envelope struct {
	Detail  any `json:"detail"`
	Message any `json:"message"`
}
