package app

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cinegestor/cinema-admin-console/internal/domain"
	"golang.org/x/sync/errgroup"
)

// saleData is the ticket-sale page state for one showtime. Blocked is set
// when no pricing record references the showtime; the sale cannot proceed
// without one.
type saleData struct {
	Showtime *domain.Showtime
	Pricing  *domain.TicketPricing
	Combos   []*domain.SnackCombo
	Form     saleFormValues
	Blocked  bool
}

type saleFormValues struct {
	QuantidadeInteira string
	QuantidadeMeia    string
	LancheComboID     string
	MetodoPagamento   string
	Error             string
}

func (app *Application) ticketSaleForm(w http.ResponseWriter, r *http.Request) {
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

	sale, err := app.loadSaleData(r, showtime)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar dados")
		return
	}

	data := app.newTemplateData(r)
	data.Sale = sale
	data.PaymentMethods = domain.PaymentMethods

	app.render(w, r, http.StatusOK, "ticket_sale.tmpl", data)
}

// loadSaleData fetches the pricing records and combos concurrently and
// resolves the showtime's pricing by scanning the full collection; the
// backend has no direct showtime-to-pricing lookup.
func (app *Application) loadSaleData(r *http.Request, showtime *domain.Showtime) (*saleData, error) {
	var (
		pricings []*domain.TicketPricing
		combos   []*domain.SnackCombo
	)

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		var err error
		pricings, err = app.pricings.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		combos, err = app.combos.GetAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sale := &saleData{
		Showtime: showtime,
		Combos:   combos,
	}

	pricing, err := domain.FindPricingForShowtime(pricings, showtime.ID)
	if err != nil {
		if errors.Is(err, domain.ErrPricingNotFound) {
			sale.Blocked = true
			sale.Form.Error = "Ingresso não encontrado para esta sessão"

			return sale, nil
		}

		return nil, err
	}

	sale.Pricing = pricing

	return sale, nil
}

func (app *Application) ticketSaleSubmit(w http.ResponseWriter, r *http.Request) {
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

	sale, err := app.loadSaleData(r, showtime)
	if err != nil {
		app.pageError(w, r, err, "Erro ao carregar dados")
		return
	}

	form := saleFormValues{
		QuantidadeInteira: r.PostFormValue("quantidadeInteira"),
		QuantidadeMeia:    r.PostFormValue("quantidadeMeia"),
		LancheComboID:     r.PostFormValue("lancheComboId"),
		MetodoPagamento:   r.PostFormValue("metodoPagamento"),
	}
	sale.Form = form

	if sale.Blocked {
		sale.Form.Error = "Ingresso não encontrado para esta sessão"
		app.renderSale(w, r, sale)
		return
	}

	inteiraQtd := clampQty(form.QuantidadeInteira)
	meiaQtd := clampQty(form.QuantidadeMeia)

	if inteiraQtd == 0 && meiaQtd == 0 {
		sale.Form.Error = "Selecione pelo menos um ingresso"
		app.renderSale(w, r, sale)
		return
	}

	if form.MetodoPagamento == "" {
		sale.Form.Error = "Selecione um método de pagamento"
		app.renderSale(w, r, sale)
		return
	}

	// comboRefs marshals as an empty list, not null, when no combo is
	// selected.
	comboRefs := []int64{}

	var combo *domain.SnackCombo

	if form.LancheComboID != "" {
		comboID, _ := strconv.ParseInt(form.LancheComboID, 10, 64)
		comboRefs = append(comboRefs, comboID)

		for _, c := range sale.Combos {
			if c.ID == comboID {
				combo = c
				break
			}
		}
	}

	order := &domain.Order{
		DataHora:            domain.NewDateTime(time.Now()),
		IngressosMeiaQtd:    meiaQtd,
		IngressosInteiraQtd: inteiraQtd,
		Ingresso:            sale.Pricing.ID,
		LancheCombos:        comboRefs,
		ValorTotal:          domain.OrderTotal(sale.Pricing, inteiraQtd, meiaQtd, combo),
		MetodoPagamento:     form.MetodoPagamento,
	}

	if _, err := app.orders.Create(r.Context(), order); err != nil {
		app.logError(r, err)
		sale.Form.Error = "Erro ao processar venda"
		app.renderSale(w, r, sale)
		return
	}

	app.flash(r, "Venda realizada com sucesso")
	http.Redirect(w, r, "/pedidos", http.StatusSeeOther)
}

func (app *Application) renderSale(w http.ResponseWriter, r *http.Request, sale *saleData) {
	data := app.newTemplateData(r)
	data.Sale = sale
	data.PaymentMethods = domain.PaymentMethods

	app.render(w, r, http.StatusUnprocessableEntity, "ticket_sale.tmpl", data)
}

// clampQty parses a ticket count, treating malformed input and negatives
// as zero.
func clampQty(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}

	return n
}
