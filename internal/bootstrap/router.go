package bootstrap

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/memoboard/memo-backend/internal/api/http"
	"github.com/memoboard/memo-backend/internal/api/http/middleware"
	memohttp "github.com/memoboard/memo-backend/internal/memo/http"
	"github.com/memoboard/memo-backend/internal/memo/repository"
	"github.com/memoboard/memo-backend/internal/memo/selector"
	"github.com/memoboard/memo-backend/internal/memo/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Store       repository.Store
	StaticDir   string
	CORSOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.RedirectTrailingSlash = true

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.CORSOrigins,
		AllowMethods: []string{"GET", "HEAD", "OPTIONS", "POST", "PATCH", "DELETE"},
		AllowHeaders: []string{"Content-Type", "X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	sequenceHandler := httpapi.NewSequenceHandler()
	sequenceHandler.RegisterRoutes(r)

	sel := selector.New(dep.Store)
	svc := service.New(dep.Store, sel)
	memoHandler := memohttp.New(svc, sel)
	memoHandler.Register(r)

	// Everything that matches no API route falls through to the SPA.
	r.NoRoute(spaFallback(dep.StaticDir))

	return r
}

// spaFallback serves the front end build: the requested file when it
// exists, index.html otherwise so client-side routing keeps working.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir == "" {
			c.JSON(http.StatusNotFound, gin.H{"detail": nil, "message": "no such resource"})
			return
		}

		rel := strings.TrimPrefix(c.Request.URL.Path, "/")
		candidate := filepath.Join(staticDir, filepath.Clean("/"+rel))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": nil, "message": "no such resource"})
			return
		}
		c.File(index)
	}
}
