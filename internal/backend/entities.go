package backend

import "github.com/cinegestor/cinema-admin-console/internal/domain"

// One client per backend collection. Note "/ingresso" is singular: that is
// the backend's contract, inconsistent with the other resources but not
// ours to fix.

type MovieClient struct {
	resource[domain.Movie]
}

func NewMovieClient(c *Client) *MovieClient {
	return &MovieClient{resource[domain.Movie]{client: c, path: "/filmes"}}
}

type RoomClient struct {
	resource[domain.Room]
}

func NewRoomClient(c *Client) *RoomClient {
	return &RoomClient{resource[domain.Room]{client: c, path: "/salas"}}
}

type ShowtimeClient struct {
	resource[domain.Showtime]
}

func NewShowtimeClient(c *Client) *ShowtimeClient {
	return &ShowtimeClient{resource[domain.Showtime]{client: c, path: "/sessoes"}}
}

type TicketPricingClient struct {
	resource[domain.TicketPricing]
}

func NewTicketPricingClient(c *Client) *TicketPricingClient {
	return &TicketPricingClient{resource[domain.TicketPricing]{client: c, path: "/ingresso"}}
}

type SnackComboClient struct {
	resource[domain.SnackCombo]
}

func NewSnackComboClient(c *Client) *SnackComboClient {
	return &SnackComboClient{resource[domain.SnackCombo]{client: c, path: "/lancheCombos"}}
}

type OrderClient struct {
	resource[domain.Order]
}

func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{resource[domain.Order]{client: c, path: "/pedidos"}}
}
