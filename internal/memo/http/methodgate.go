package http

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Verbs legal for every path shape, and the extras each shape adds.
var (
	alwaysAllowed     = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	collectionAllowed = []string{http.MethodPost}
	itemAllowed       = []string{http.MethodPatch, http.MethodDelete}
)

// ItemShaped reports whether the path addresses a single resource, i.e.
// its final segment is a positive integer.
func ItemShaped(path string) bool {
	path = strings.TrimSuffix(path, "/")
	last := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		last = path[i+1:]
	}
	n, err := strconv.ParseUint(last, 10, 64)
	return err == nil && n > 0
}

// AllowedMethods computes the legal verb set for a path, in the order
// advertised by the Allow header.
func AllowedMethods(path string) []string {
	extra := collectionAllowed
	if ItemShaped(path) {
		extra = itemAllowed
	}
	out := make([]string, 0, len(alwaysAllowed)+len(extra))
	out = append(out, alwaysAllowed...)
	return append(out, extra...)
}

// MethodGate enforces per-path-shape verb gating before any handler
// runs. Disallowed methods get a 405 with the Allow header; OPTIONS is
// answered here with the allowed set as payload.
func MethodGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := AllowedMethods(c.Request.URL.Path)
		c.Header("Allow", strings.Join(allowed, ", "))

		if !slices.Contains(allowed, c.Request.Method) {
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, envelope{
				Detail:  nil,
				Message: "method not allowed here",
			})
			return
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatusJSON(http.StatusOK, envelope{
				Detail:  gin.H{"allow": allowed},
				Message: "ok",
			})
			return
		}

		c.Next()
	}
}
