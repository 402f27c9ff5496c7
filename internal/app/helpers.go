package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const sessionKeyFlash = "flash"

func (app *Application) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	ts, ok := app.templates[page]
	if !ok {
		app.serverError(w, r, fmt.Errorf("the template %q does not exist", page))
		return
	}

	// Render to a buffer first so a template fault becomes a 500 instead of
	// a half-written page.
	buf := new(bytes.Buffer)

	err := ts.ExecuteTemplate(buf, "base", data)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (app *Application) newTemplateData(r *http.Request) templateData {
	return templateData{
		Env:     app.config.Env,
		Version: version,
		Flash:   app.sessionManager.PopString(r.Context(), sessionKeyFlash),
	}
}

func (app *Application) flash(r *http.Request, message string) {
	app.sessionManager.Put(r.Context(), sessionKeyFlash, message)
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// idParam reads the {id} route parameter. A zero return means the parameter
// is absent or malformed.
func idParam(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0
	}

	return id
}
