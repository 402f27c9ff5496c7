package app

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cinegestor/cinema-admin-console/internal/domain"
	appvalidator "github.com/cinegestor/cinema-admin-console/internal/validator"
)

type comboFormValues struct {
	Nome          string
	Descricao     string
	ValorUnitario string
	QtUnidade     string
	Error         string
}

type comboInput struct {
	Nome          string  `validate:"required"`
	Descricao     string  `validate:"required"`
	ValorUnitario float64 `validate:"gt=0"`
	QtUnidade     int     `validate:"gt=0"`
}

var comboMessages = map[string]string{
	"Nome.required":      "Nome é obrigatório",
	"Descricao.required": "Descrição é obrigatória",
	"ValorUnitario.gt":   "Valor unitário deve ser maior que zero",
	"QtUnidade.gt":       "Quantidade deve ser maior que zero",
}

func (app *Application) comboList(w http.ResponseWriter, r *http.Request) {
	combos, err := app.combos.GetAll(r.Context())
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar lanche combos")
		return
	}

	data := app.newTemplateData(r)
	data.Combos = combos

	app.render(w, r, http.StatusOK, "combo_list.tmpl", data)
}

func (app *Application) comboForm(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(r)
	data.Form = comboFormValues{}

	if id := idParam(r); id != 0 {
		combo, err := app.combos.GetById(r.Context(), id)
		if err != nil {
			app.pageError(w, r, err, "Erro ao carregar lanche combo")
			return
		}

		data.IsEdit = true
		data.ID = id
		data.Form = comboFormValues{
			Nome:          combo.Nome,
			Descricao:     combo.Descricao,
			ValorUnitario: strconv.FormatFloat(combo.ValorUnitario, 'f', -1, 64),
			QtUnidade:     strconv.Itoa(combo.QtUnidade),
		}
	}

	app.render(w, r, http.StatusOK, "combo_form.tmpl", data)
}

func (app *Application) comboCreate(w http.ResponseWriter, r *http.Request) {
	app.comboSubmit(w, r, 0)
}

func (app *Application) comboUpdate(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	app.comboSubmit(w, r, id)
}

func (app *Application) comboSubmit(w http.ResponseWriter, r *http.Request, id int64) {
	form := comboFormValues{
		Nome:          strings.TrimSpace(r.PostFormValue("nome")),
		Descricao:     strings.TrimSpace(r.PostFormValue("descricao")),
		ValorUnitario: r.PostFormValue("valorUnitario"),
		QtUnidade:     r.PostFormValue("qtUnidade"),
	}

	valorUnitario, _ := strconv.ParseFloat(form.ValorUnitario, 64)
	qtUnidade, _ := strconv.Atoi(form.QtUnidade)

	input := comboInput{
		Nome:          form.Nome,
		Descricao:     form.Descricao,
		ValorUnitario: valorUnitario,
		QtUnidade:     qtUnidade,
	}

	if err := app.validator.Struct(input); err != nil {
		form.Error = appvalidator.FirstMessage(err, comboMessages)
		app.renderComboForm(w, r, form, id)
		return
	}

	// The subtotal is computed here and stored; the backend never
	// recomputes it.
	combo := &domain.SnackCombo{
		Nome:          form.Nome,
		Descricao:     form.Descricao,
		ValorUnitario: valorUnitario,
		QtUnidade:     qtUnidade,
		Subtotal:      domain.ComboSubtotal(valorUnitario, qtUnidade),
	}

	var err error
	if id != 0 {
		_, err = app.combos.Update(r.Context(), id, combo)
	} else {
		_, err = app.combos.Create(r.Context(), combo)
	}

	if err != nil {
		app.logError(r, err)
		form.Error = "Erro ao salvar lanche combo"
		app.renderComboForm(w, r, form, id)
		return
	}

	app.flash(r, "Lanche combo salvo com sucesso")
	http.Redirect(w, r, "/lanche-combos", http.StatusSeeOther)
}

func (app *Application) renderComboForm(w http.ResponseWriter, r *http.Request, form comboFormValues, id int64) {
	data := app.newTemplateData(r)
	data.Form = form
	data.IsEdit = id != 0
	data.ID = id

	app.render(w, r, http.StatusUnprocessableEntity, "combo_form.tmpl", data)
}

func (app *Application) comboConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	combo, err := app.combos.GetById(r.Context(), id)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar lanche combo")
		return
	}

	data := app.newTemplateData(r)
	data.Confirm = &confirmData{
		Title:      "Excluir Lanche Combo",
		Message:    fmt.Sprintf("Tem certeza que deseja excluir o combo %q?", combo.Nome),
		ConfirmURL: fmt.Sprintf("/lanche-combos/%d/excluir", id),
		CancelURL:  "/lanche-combos",
	}

	app.render(w, r, http.StatusOK, "confirm.tmpl", data)
}

func (app *Application) comboDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	if err := app.combos.Delete(r.Context(), id); err != nil {
		app.logError(r, err)
		app.flash(r, deleteErrorMessage(err, "Erro ao excluir lanche combo"))
	} else {
		app.flash(r, "Lanche combo excluído com sucesso")
	}

	http.Redirect(w, r, "/lanche-combos", http.StatusSeeOther)
}
