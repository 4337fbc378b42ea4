// pkg/api/router.go
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RequestTimeout bounds each request's context.
const RequestTimeout = 60 * time.Second

// NewRouter builds the chi router serving the two static routes.
// Unknown paths get chi's default 404, a known path with the wrong method its 405.
func NewRouter(a *API, logger *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))
	r.Use(middleware.GetHead) // HEAD is served by the GET handlers

	// --- Routes ---
	r.Get("/", a.Welcome)
	r.Get("/status", a.Status)

	return r
}
