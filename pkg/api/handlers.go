// pkg/api/handlers.go
package api

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Fixed response bodies. They never depend on the request.
const (
	WelcomeBody = "Welcome to the world!"
	StatusBody  = "All is well with the world"
)

// API holds handler dependencies.
type API struct {
	Logger logrus.FieldLogger
}

// NewAPI creates the handler set.
func NewAPI(logger logrus.FieldLogger) *API {
	return &API{Logger: logger}
}

// Welcome handles GET /
func (a *API) Welcome(w http.ResponseWriter, r *http.Request) {
	a.sendText(w, r, WelcomeBody)
}

// Status handles GET /status
func (a *API) Status(w http.ResponseWriter, r *http.Request) {
	a.sendText(w, r, StatusBody)
}

func (a *API) sendText(w http.ResponseWriter, r *http.Request, body string) {
	if err := NewResponseWriter(w).SendText(http.StatusOK, body); err != nil {
		// The client went away; nothing left to send.
		a.Logger.WithError(err).WithField("path", r.URL.Path).Debug("failed to write response")
	}
}
