package app

import (
	"fmt"
	"net/http"

	"github.com/cinegestor/cinema-admin-console/internal/ptbr"
)

func (app *Application) orderList(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orders.GetAll(r.Context())
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar pedidos")
		return
	}

	data := app.newTemplateData(r)
	data.Orders = orders

	app.render(w, r, http.StatusOK, "order_list.tmpl", data)
}

func (app *Application) orderConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	order, err := app.orders.GetById(r.Context(), id)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar pedido")
		return
	}

	data := app.newTemplateData(r)
	data.Confirm = &confirmData{
		Title:      "Excluir Pedido",
		Message:    fmt.Sprintf("Tem certeza que deseja excluir o pedido de %s?", ptbr.DateTime(order.DataHora.Time)),
		ConfirmURL: fmt.Sprintf("/pedidos/%d/excluir", id),
		CancelURL:  "/pedidos",
	}

	app.render(w, r, http.StatusOK, "confirm.tmpl", data)
}

func (app *Application) orderDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		app.notFound(w, r)
		return
	}

	if err := app.orders.Delete(r.Context(), id); err != nil {
		app.logError(r, err)
		app.flash(r, deleteErrorMessage(err, "Erro ao excluir pedido"))
	} else {
		app.flash(r, "Pedido excluído com sucesso")
	}

	http.Redirect(w, r, "/pedidos", http.StatusSeeOther)
}
