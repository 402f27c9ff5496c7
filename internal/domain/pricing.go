package domain

import "context"

// TicketPricing mirrors the backend's "ingresso" resource: the full and
// half ticket prices for exactly one showtime.
type TicketPricing struct {
	ID           int64   `json:"id,omitempty"`
	ValorInteira float64 `json:"valorInteira"`
	ValorMeia    float64 `json:"valorMeia"`
	Sessao       int64   `json:"sessao"`
}

type TicketPricingService interface {
	GetAll(ctx context.Context) ([]*TicketPricing, error)
	GetById(ctx context.Context, id int64) (*TicketPricing, error)
	Create(ctx context.Context, pricing *TicketPricing) (*TicketPricing, error)
	Update(ctx context.Context, id int64, pricing *TicketPricing) (*TicketPricing, error)
	Delete(ctx context.Context, id int64) error
}

// FindPricingForShowtime scans pricings for the first record referencing the
// showtime. The backend offers no direct showtime-to-pricing lookup, so the
// full collection is scanned; first match wins.
func FindPricingForShowtime(pricings []*TicketPricing, showtimeID int64) (*TicketPricing, error) {
	for _, p := range pricings {
		if p.Sessao == showtimeID {
			return p, nil
		}
	}

	return nil, ErrPricingNotFound
}
