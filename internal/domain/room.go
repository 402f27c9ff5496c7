package domain

import (
	"context"
	"math"
)

// Room mirrors the backend's "sala" resource. Poltronas is the seat matrix:
// one slice per row, one seat-state integer per seat (0 = unoccupied).
type Room struct {
	ID         int64   `json:"id,omitempty"`
	Numero     int     `json:"numero"`
	Capacidade int     `json:"capacidade"`
	Poltronas  [][]int `json:"poltronas"`
}

type RoomService interface {
	GetAll(ctx context.Context) ([]*Room, error)
	GetById(ctx context.Context, id int64) (*Room, error)
	Create(ctx context.Context, room *Room) (*Room, error)
	Update(ctx context.Context, id int64, room *Room) (*Room, error)
	Delete(ctx context.Context, id int64) error
}

// GenerateSeatLayout builds the seat matrix for a new room. Rows hold
// ceil(sqrt(capacity * 1.5)) seats each and are filled until exactly
// capacity seats exist, so only the last row may come up short. The layout
// is generated once at creation and preserved verbatim on later edits.
func GenerateSeatLayout(capacity int) [][]int {
	if capacity <= 0 {
		return nil
	}

	rowSize := int(math.Ceil(math.Sqrt(float64(capacity) * 1.5)))

	var rows [][]int

	for created := 0; created < capacity; {
		n := rowSize
		if remaining := capacity - created; remaining < n {
			n = remaining
		}

		rows = append(rows, make([]int, n))
		created += n
	}

	return rows
}
