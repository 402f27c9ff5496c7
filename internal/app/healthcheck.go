package app

import "net/http"

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":      "UP",
		"version":     version,
		"environment": app.config.Env,
	}

	err := app.writeJSON(w, http.StatusOK, resp)
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)

	app.render(w, r, http.StatusOK, "home.tmpl", data)
}
