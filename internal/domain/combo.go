package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// SnackCombo mirrors the backend's "lancheCombo" resource. Subtotal is
// computed at form submit time and stored; the backend never recomputes it.
type SnackCombo struct {
	ID            int64   `json:"id,omitempty"`
	Nome          string  `json:"nome"`
	Descricao     string  `json:"descricao"`
	ValorUnitario float64 `json:"valorUnitario"`
	QtUnidade     int     `json:"qtUnidade"`
	Subtotal      float64 `json:"subtotal"`
}

type SnackComboService interface {
	GetAll(ctx context.Context) ([]*SnackCombo, error)
	GetById(ctx context.Context, id int64) (*SnackCombo, error)
	Create(ctx context.Context, combo *SnackCombo) (*SnackCombo, error)
	Update(ctx context.Context, id int64, combo *SnackCombo) (*SnackCombo, error)
	Delete(ctx context.Context, id int64) error
}

// ComboSubtotal computes unit price times quantity with decimal arithmetic,
// since the prices travel as floats on the wire.
func ComboSubtotal(valorUnitario float64, qtUnidade int) float64 {
	subtotal := decimal.NewFromFloat(valorUnitario).Mul(decimal.NewFromInt(int64(qtUnidade)))

	return subtotal.InexactFloat64()
}
