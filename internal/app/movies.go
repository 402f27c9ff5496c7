package app

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cinegestor/cinema-admin-console/internal/domain"
	appvalidator "github.com/cinegestor/cinema-admin-console/internal/validator"
)

// movieFormValues holds the raw form state: every field a string until
// submit, exactly as it arrives from the inputs.
type movieFormValues struct {
	Titulo             string
	Sinopse            string
	Classificacao      string
	Duracao            string
	Elenco             string
	Genero             string
	DataInicioExibicao string
	DataFinalExibicao  string
	Error              string
}

type movieInput struct {
	Titulo             string    `validate:"required"`
	Sinopse            string    `validate:"required,min=10"`
	Duracao            int       `validate:"gt=0"`
	DataInicioExibicao time.Time `validate:"required"`
	DataFinalExibicao  time.Time `validate:"required"`
}

var movieMessages = map[string]string{
	"Titulo.required":             "Título é obrigatório",
	"Sinopse.required":            "Sinopse deve ter pelo menos 10 caracteres",
	"Sinopse.min":                 "Sinopse deve ter pelo menos 10 caracteres",
	"Duracao.gt":                  "Duração é obrigatória e deve ser maior que zero",
	"DataInicioExibicao.required": "Período de exibição é obrigatório",
	"DataFinalExibicao.required":  "Período de exibição é obrigatório",
}

func (app *Application) movieList(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movies.GetAll(r.Context())
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar filmes")
		return
	}

	data := app.newTemplateData(r)
	data.Movies = movies

	app.render(w, r, http.StatusOK, "movie_list.tmpl", data)
}

func (app *Application) movieDetails(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	movie, err := app.movies.GetById(r.Context(), id)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar filme")
		return
	}

	data := app.newTemplateData(r)
	data.Movie = movie

	app.render(w, r, http.StatusOK, "movie_details.tmpl", data)
}

func (app *Application) movieForm(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Form = movieFormValues{}

	if id := idParam(r); id != 0 {
		movie, err := app.movies.GetById(r.Context(), id)
		if err != nil {
			app.pageError(w, r, err, "Erro ao carregar filme")
			return
		}

		data.IsEdit = true
		data.ID = id
		data.Form = movieFormValues{
			Titulo:             movie.Titulo,
			Sinopse:            movie.Sinopse,
			Classificacao:      movie.Classificacao,
			Duracao:            strconv.Itoa(movie.Duracao),
			Elenco:             movie.Elenco,
			Genero:             movie.Genero,
			DataInicioExibicao: movie.DataInicioExibicao.Format("2006-01-02"),
			DataFinalExibicao:  movie.DataFinalExibicao.Format("2006-01-02"),
		}
	}

	app.render(w, r, http.StatusOK, "movie_form.tmpl", data)
}

func (app *Application) movieCreate(w http.ResponseWriter, r *http.Request) {
	app.movieSubmit(w, r, 0)
}

func (app *Application) movieUpdate(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	app.movieSubmit(w, r, id)
}

func (app *Application) movieSubmit(w http.ResponseWriter, r *http.Request, id int64) {
	form := movieFormValues{
		Titulo:             strings.TrimSpace(r.PostFormValue("titulo")),
		Sinopse:            strings.TrimSpace(r.PostFormValue("sinopse")),
		Classificacao:      r.PostFormValue("classificacao"),
		Duracao:            r.PostFormValue("duracao"),
		Elenco:             r.PostFormValue("elenco"),
		Genero:             r.PostFormValue("genero"),
		DataInicioExibicao: r.PostFormValue("dataInicioExibicao"),
		DataFinalExibicao:  r.PostFormValue("dataFinalExibicao"),
	}

	duracao, _ := strconv.Atoi(form.Duracao)
	inicio, _ := time.ParseInLocation("2006-01-02", form.DataInicioExibicao, time.Local)
	fim, _ := time.ParseInLocation("2006-01-02", form.DataFinalExibicao, time.Local)

	input := movieInput{
		Titulo:             form.Titulo,
		Sinopse:            form.Sinopse,
		Duracao:            duracao,
		DataInicioExibicao: inicio,
		DataFinalExibicao:  fim,
	}

	if err := app.validator.Struct(input); err != nil {
		form.Error = appvalidator.FirstMessage(err, movieMessages)
		app.renderMovieForm(w, r, form, id)
		return
	}

	movie := &domain.Movie{
		Titulo:             form.Titulo,
		Sinopse:            form.Sinopse,
		Classificacao:      form.Classificacao,
		Duracao:            duracao,
		Elenco:             form.Elenco,
		Genero:             form.Genero,
		DataInicioExibicao: domain.NewDate(inicio),
		DataFinalExibicao:  domain.NewDate(fim),
	}

	var err error
	if id != 0 {
		_, err = app.movies.Update(r.Context(), id, movie)
	} else {
		_, err = app.movies.Create(r.Context(), movie)
	}

	if err != nil {
		app.logError(r, err)
		form.Error = "Erro ao salvar filme"
		app.renderMovieForm(w, r, form, id)
		return
	}

	app.flash(r, "Filme salvo com sucesso")
	http.Redirect(w, r, "/filmes", http.StatusSeeOther)
}

func (app *Application) renderMovieForm(w http.ResponseWriter, r *http.Request, form movieFormValues, id int64) {
	data := app.newTemplateData(r)
	data.Form = form
	data.IsEdit = id != 0
	data.ID = id

	app.render(w, r, http.StatusUnprocessableEntity, "movie_form.tmpl", data)
}

func (app *Application) movieConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	movie, err := app.movies.GetById(r.Context(), id)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar filme")
		return
	}

	data := app.newTemplateData(r)
	data.Confirm = &confirmData{
		Title:      "Excluir Filme",
		Message:    fmt.Sprintf("Tem certeza que deseja excluir o filme %q?", movie.Titulo),
		ConfirmURL: fmt.Sprintf("/filmes/%d/excluir", id),
		CancelURL:  "/filmes",
	}

	app.render(w, r, http.StatusOK, "confirm.tmpl", data)
}

func (app *Application) movieDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	if err := app.movies.Delete(r.Context(), id); err != nil {
		app.logError(r, err)
		app.flash(r, deleteErrorMessage(err, "Erro ao excluir filme"))
	} else {
		app.flash(r, "Filme excluído com sucesso")
	}

	http.Redirect(w, r, "/filmes", http.StatusSeeOther)
}
