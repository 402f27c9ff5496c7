package domain

import (
	"context"
	"time"
)

// Showtime mirrors the backend's "sessao" resource. Filme and Sala carry the
// referenced entity IDs, not embedded records.
type Showtime struct {
	ID      int64    `json:"id,omitempty"`
	Horario DateTime `json:"horario"`
	Filme   int64    `json:"filme"`
	Sala    int64    `json:"sala"`
}

type ShowtimeService interface {
	GetAll(ctx context.Context) ([]*Showtime, error)
	GetById(ctx context.Context, id int64) (*Showtime, error)
	Create(ctx context.Context, showtime *Showtime) (*Showtime, error)
	Update(ctx context.Context, id int64, showtime *Showtime) (*Showtime, error)
	Delete(ctx context.Context, id int64) error
}

// SchedulingWindow is the valid interval for scheduling a showtime of a
// movie: from the later of now and the movie's exhibition start, to the
// movie's exhibition end.
type SchedulingWindow struct {
	Start time.Time
	End   time.Time
}

func NewSchedulingWindow(now time.Time, movie *Movie) SchedulingWindow {
	start := movie.DataInicioExibicao.Time
	if now.After(start) {
		start = now
	}

	return SchedulingWindow{Start: start, End: movie.DataFinalExibicao.Time}
}

func (w SchedulingWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
