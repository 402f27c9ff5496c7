package app

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cinegestor/cinema-admin-console/internal/domain"
	appvalidator "github.com/cinegestor/cinema-admin-console/internal/validator"
)

type roomFormValues struct {
	Numero     string
	Capacidade string
	Error      string
}

type roomInput struct {
	Numero     int `validate:"gt=0"`
	Capacidade int `validate:"gt=0"`
}

var roomMessages = map[string]string{
	"Numero.gt":     "O número da sala deve ser maior que zero",
	"Capacidade.gt": "A capacidade deve ser maior que zero",
}

func (app *Application) roomList(w http.ResponseWriter, r *http.Request) {
	rooms, err := app.rooms.GetAll(r.Context())
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar salas")
		return
	}

	data := app.newTemplateData(r)
	data.Rooms = rooms

	app.render(w, r, http.StatusOK, "room_list.tmpl", data)
}

func (app *Application) roomForm(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Form = roomFormValues{}

	if id := idParam(r); id != 0 {
		room, err := app.rooms.GetById(r.Context(), id)
		if err != nil {
			app.pageError(w, r, err, "Erro ao carregar sala")
			return
		}

		data.IsEdit = true
		data.ID = id
		data.Form = roomFormValues{
			Numero:     strconv.Itoa(room.Numero),
			Capacidade: strconv.Itoa(room.Capacidade),
		}
	}

	app.render(w, r, http.StatusOK, "room_form.tmpl", data)
}

func (app *Application) roomCreate(w http.ResponseWriter, r *http.Request) {
	app.roomSubmit(w, r, 0)
}

func (app *Application) roomUpdate(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	app.roomSubmit(w, r, id)
}

func (app *Application) roomSubmit(w http.ResponseWriter, r *http.Request, id int64) {
	form := roomFormValues{
		Numero:     r.PostFormValue("numero"),
		Capacidade: r.PostFormValue("capacidade"),
	}

	numero, _ := strconv.Atoi(form.Numero)
	capacidade, _ := strconv.Atoi(form.Capacidade)

	input := roomInput{Numero: numero, Capacidade: capacidade}

	if err := app.validator.Struct(input); err != nil {
		form.Error = appvalidator.FirstMessage(err, roomMessages)
		app.renderRoomForm(w, r, form, id)
		return
	}

	// Room numbers must be unique; the backend does not report the
	// conflict in a usable way, so the check happens against the fetched
	// list, excluding the room being edited.
	rooms, err := app.rooms.GetAll(r.Context())
	if err != nil {
		app.logError(r, err)
		form.Error = "Erro ao salvar sala"
		app.renderRoomForm(w, r, form, id)
		return
	}

	for _, existing := range rooms {
		if existing.Numero == numero && existing.ID != id {
			form.Error = fmt.Sprintf("Já existe uma sala com o número %d. Por favor, escolha outro número.", numero)
			app.renderRoomForm(w, r, form, id)
			return
		}
	}

	room := &domain.Room{
		Numero:     numero,
		Capacidade: capacidade,
	}

	if id != 0 {
		// Edits preserve the existing seat matrix verbatim.
		existing, err := app.rooms.GetById(r.Context(), id)
		if err != nil {
			app.logError(r, err)
			form.Error = "Erro ao salvar sala"
			app.renderRoomForm(w, r, form, id)
			return
		}

		room.Poltronas = existing.Poltronas
		_, err = app.rooms.Update(r.Context(), id, room)
		if err != nil {
			app.logError(r, err)
			form.Error = "Erro ao salvar sala"
			app.renderRoomForm(w, r, form, id)
			return
		}
	} else {
		room.Poltronas = domain.GenerateSeatLayout(capacidade)

		_, err = app.rooms.Create(r.Context(), room)
		if err != nil {
			app.logError(r, err)
			form.Error = "Erro ao salvar sala"
			app.renderRoomForm(w, r, form, id)
			return
		}
	}

	app.flash(r, "Sala salva com sucesso")
	http.Redirect(w, r, "/salas", http.StatusSeeOther)
}

func (app *Application) renderRoomForm(w http.ResponseWriter, r *http.Request, form roomFormValues, id int64) {
	data := app.newTemplateData(r)
	data.Form = form
	data.IsEdit = id != 0
	data.ID = id

	app.render(w, r, http.StatusUnprocessableEntity, "room_form.tmpl", data)
}

func (app *Application) roomConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	room, err := app.rooms.GetById(r.Context(), id)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar sala")
		return
	}

	data := app.newTemplateData(r)
	data.Confirm = &confirmData{
		Title:      "Excluir Sala",
		Message:    fmt.Sprintf("Tem certeza que deseja excluir a sala %d?", room.Numero),
		ConfirmURL: fmt.Sprintf("/salas/%d/excluir", id),
		CancelURL:  "/salas",
	}

	app.render(w, r, http.StatusOK, "confirm.tmpl", data)
}

func (app *Application) roomDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	if err := app.rooms.Delete(r.Context(), id); err != nil {
		app.logError(r, err)
		app.flash(r, deleteErrorMessage(err, "Erro ao excluir sala"))
	} else {
		app.flash(r, "Sala excluída com sucesso")
	}

	http.Redirect(w, r, "/salas", http.StatusSeeOther)
}
