package http

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxSequenceLength caps how many random values one request may ask for.
const MaxSequenceLength = 10

// SequenceHandler serves a test endpoint the front end uses to verify
// the API is reachable: a map of index to random integer in [0, 100].
type SequenceHandler struct{}

func NewSequenceHandler() *SequenceHandler {
	return &SequenceHandler{}
}

func (h *SequenceHandler) Sequence(c *gin.Context) {
	count := MaxSequenceLength
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": nil, "message": "count must be an integer"})
			return
		}
		count = n
	}
	if count > MaxSequenceLength {
		count = MaxSequenceLength
	}

	seq := make(map[int]int, count)
	for i := 1; i <= count; i++ {
		seq[i] = rand.Intn(101)
	}
	c.JSON(http.StatusOK, seq)
}

func (h *SequenceHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/sequence/", h.Sequence)
}
