package app

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cinegestor/cinema-admin-console/internal/domain"
	"github.com/cinegestor/cinema-admin-console/internal/ptbr"
	"golang.org/x/sync/errgroup"
)

type showtimeFormValues struct {
	Filme   string
	Sala    string
	Horario string
	Error   string
}

func (app *Application) showtimeList(w http.ResponseWriter, r *http.Request) {
	var (
		showtimes []*domain.Showtime
		movies    []*domain.Movie
		rooms     []*domain.Room
	)

	// The three collections are independent; fetch them concurrently and
	// join afterwards.
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		var err error
		showtimes, err = app.showtimes.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = app.movies.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rooms, err = app.rooms.GetAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		app.pageError(w, r, err, "Erro ao carregar sessões")
		return
	}

	data := app.newTemplateData(r)
	data.Showtimes = joinShowtimes(showtimes, movies, rooms)

	app.render(w, r, http.StatusOK, "showtime_list.tmpl", data)
}

// joinShowtimes resolves each showtime's movie and room references against
// maps built from the fetched collections. A dangling reference renders a
// placeholder label, never a fault.
func joinShowtimes(showtimes []*domain.Showtime, movies []*domain.Movie, rooms []*domain.Room) []showtimeRow {
	movieByID := make(map[int64]*domain.Movie, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m
	}

	roomByID := make(map[int64]*domain.Room, len(rooms))
	for _, sala := range rooms {
		roomByID[sala.ID] = sala
	}

	rows := make([]showtimeRow, 0, len(showtimes))

	for _, s := range showtimes {
		row := showtimeRow{
			Showtime:   s,
			FilmeNome:  "Filme não encontrado",
			SalaNumero: "Sala não encontrada",
		}

		if m, ok := movieByID[s.Filme]; ok {
			row.FilmeNome = m.Titulo
		}

		if sala, ok := roomByID[s.Sala]; ok {
			row.SalaNumero = fmt.Sprintf("Sala %d", sala.Numero)
		}

		rows = append(rows, row)
	}

	return rows
}

func (app *Application) showtimeForm(w http.ResponseWriter, r *http.Request) {
	movies, rooms, err := app.fetchMoviesAndRooms(r)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar filmes e salas")
		return
	}

	data := app.newTemplateData(r)
	data.Movies = movies
	data.Rooms = rooms
	data.Form = showtimeFormValues{}

	if id := idParam(r); id != 0 {
		showtime, err := app.showtimes.GetById(r.Context(), id)
		if err != nil {
			app.pageError(w, r, err, "Erro ao carregar sessão")
			return
		}

		data.IsEdit = true
		data.ID = id
		data.Form = showtimeFormValues{
			Filme:   strconv.FormatInt(showtime.Filme, 10),
			Sala:    strconv.FormatInt(showtime.Sala, 10),
			Horario: showtime.Horario.Format("2006-01-02T15:04"),
		}
	}

	app.render(w, r, http.StatusOK, "showtime_form.tmpl", data)
}

func (app *Application) fetchMoviesAndRooms(r *http.Request) ([]*domain.Movie, []*domain.Room, error) {
	var (
		movies []*domain.Movie
		rooms  []*domain.Room
	)

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		var err error
		movies, err = app.movies.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rooms, err = app.rooms.GetAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return movies, rooms, nil
}

func (app *Application) showtimeCreate(w http.ResponseWriter, r *http.Request) {
	app.showtimeSubmit(w, r, 0)
}

func (app *Application) showtimeUpdate(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	app.showtimeSubmit(w, r, id)
}

func (app *Application) showtimeSubmit(w http.ResponseWriter, r *http.Request, id int64) {
	form := showtimeFormValues{
		Filme:   r.PostFormValue("filme"),
		Sala:    r.PostFormValue("sala"),
		Horario: r.PostFormValue("horario"),
	}

	movies, rooms, err := app.fetchMoviesAndRooms(r)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar filmes e salas")
		return
	}

	if form.Filme == "" || form.Sala == "" || form.Horario == "" {
		form.Error = "Todos os campos são obrigatórios"
		app.renderShowtimeForm(w, r, form, id, movies, rooms)
		return
	}

	filmeID, _ := strconv.ParseInt(form.Filme, 10, 64)
	salaID, _ := strconv.ParseInt(form.Sala, 10, 64)

	var movie *domain.Movie
	for _, m := range movies {
		if m.ID == filmeID {
			movie = m
			break
		}
	}

	if movie == nil {
		form.Error = "Filme inválido"
		app.renderShowtimeForm(w, r, form, id, movies, rooms)
		return
	}

	// The input is a wall-clock value in the server's zone; parsing it as
	// UTC would shift it by the offset before the comparisons below.
	horario, err := time.ParseInLocation("2006-01-02T15:04", form.Horario, time.Local)
	if err != nil {
		form.Error = "Todos os campos são obrigatórios"
		app.renderShowtimeForm(w, r, form, id, movies, rooms)
		return
	}

	now := time.Now()

	if horario.Before(now) {
		form.Error = "A data e hora da sessão não pode ser anterior à data e hora atual"
		app.renderShowtimeForm(w, r, form, id, movies, rooms)
		return
	}

	window := domain.NewSchedulingWindow(now, movie)

	if !window.Contains(horario) {
		form.Error = fmt.Sprintf(
			"A data e hora da sessão deve estar entre %s e %s",
			ptbr.DateTime(window.Start), ptbr.DateTime(window.End),
		)
		app.renderShowtimeForm(w, r, form, id, movies, rooms)
		return
	}

	showtime := &domain.Showtime{
		Horario: domain.NewDateTime(horario),
		Filme:   filmeID,
		Sala:    salaID,
	}

	if id != 0 {
		_, err = app.showtimes.Update(r.Context(), id, showtime)
	} else {
		_, err = app.showtimes.Create(r.Context(), showtime)
	}

	if err != nil {
		app.logError(r, err)
		form.Error = "Erro ao salvar sessão"
		app.renderShowtimeForm(w, r, form, id, movies, rooms)
		return
	}

	app.flash(r, "Sessão salva com sucesso")
	http.Redirect(w, r, "/sessoes", http.StatusSeeOther)
}

func (app *Application) renderShowtimeForm(
	w http.ResponseWriter,
	r *http.Request,
	form showtimeFormValues,
	id int64,
	movies []*domain.Movie,
	rooms []*domain.Room,
) {
	data := app.newTemplateData(r)
	data.Form = form
	data.IsEdit = id != 0
	data.ID = id
	data.Movies = movies
	data.Rooms = rooms

	app.render(w, r, http.StatusUnprocessableEntity, "showtime_form.tmpl", data)
}

func (app *Application) showtimeConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	showtime, err := app.showtimes.GetById(r.Context(), id)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar sessão")
		return
	}

	data := app.newTemplateData(r)
	data.Confirm = &confirmData{
		Title:      "Excluir Sessão",
		Message:    fmt.Sprintf("Tem certeza que deseja excluir a sessão de %s?", ptbr.DateTime(showtime.Horario.Time)),
		ConfirmURL: fmt.Sprintf("/sessoes/%d/excluir", id),
		CancelURL:  "/sessoes",
	}

	app.render(w, r, http.StatusOK, "confirm.tmpl", data)
}

func (app *Application) showtimeDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	if err := app.showtimes.Delete(r.Context(), id); err != nil {
		app.logError(r, err)
		app.flash(r, deleteErrorMessage(err, "Erro ao excluir sessão"))
	} else {
		app.flash(r, "Sessão excluída com sucesso")
	}

	http.Redirect(w, r, "/sessoes", http.StatusSeeOther)
}
