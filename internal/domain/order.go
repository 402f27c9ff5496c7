package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Order mirrors the backend's "pedido" resource. LancheCombos is modeled as
// a list but the sale flow only ever supplies zero or one entries.
type Order struct {
	ID                  int64    `json:"id,omitempty"`
	DataHora            DateTime `json:"dataHora"`
	IngressosMeiaQtd    int      `json:"ingressosMeiaQtd"`
	IngressosInteiraQtd int      `json:"ingressosInteiraQtd"`
	Ingresso            int64    `json:"ingresso"`
	LancheCombos        []int64  `json:"lancheCombos"`
	ValorTotal          float64  `json:"valorTotal"`
	MetodoPagamento     string   `json:"metodoPagamento"`
}

type OrderService interface {
	GetAll(ctx context.Context) ([]*Order, error)
	GetById(ctx context.Context, id int64) (*Order, error)
	Create(ctx context.Context, order *Order) (*Order, error)
	Update(ctx context.Context, id int64, order *Order) (*Order, error)
	Delete(ctx context.Context, id int64) error
}

// PaymentMethods are the option values offered by the sale form, verbatim.
var PaymentMethods = []string{
	"cartão de crédito",
	"cartão de débito",
	"dinheiro",
	"pix",
}

// OrderTotal computes the sale total: full tickets at the full price, half
// tickets at the half price, plus the selected combo's stored subtotal, if
// any. Arithmetic runs in decimal to keep cents exact.
func OrderTotal(pricing *TicketPricing, fullQty, halfQty int, combo *SnackCombo) float64 {
	total := decimal.NewFromFloat(pricing.ValorInteira).Mul(decimal.NewFromInt(int64(fullQty)))
	total = total.Add(decimal.NewFromFloat(pricing.ValorMeia).Mul(decimal.NewFromInt(int64(halfQty))))

	if combo != nil {
		total = total.Add(decimal.NewFromFloat(combo.Subtotal))
	}

	return total.InexactFloat64()
}
