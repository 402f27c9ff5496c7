package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cinegestor/cinema-admin-console/internal/backend"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	return app.logger.With("request_id", middleware.GetReqID(r.Context()))
}

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// pageError logs the underlying failure and renders the error page with the
// generic user-facing message, the way every fetch failure surfaces.
func (app *Application) pageError(w http.ResponseWriter, r *http.Request, err error, message string) {
	app.logError(r, err)

	data := app.newTemplateData(r)
	data.Error = message

	app.render(w, r, http.StatusInternalServerError, "error.tmpl", data)
}

func (app *Application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	http.Error(w, "O servidor encontrou um problema e não pôde processar sua requisição", http.StatusInternalServerError)
}

// deleteErrorMessage surfaces the backend's own message for a failed
// delete when there is one; referential-integrity rules live server-side
// and the console only relays what the backend says.
func deleteErrorMessage(err error, fallback string) string {
	var apiErr *backend.Error

	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body
	}

	return fallback
}

func (app *Application) notFound(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Error = "Página não encontrada"

	app.render(w, r, http.StatusNotFound, "error.tmpl", data)
}
