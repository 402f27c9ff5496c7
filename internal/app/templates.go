package app

import (
	"html/template"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/cinegestor/cinema-admin-console/internal/domain"
	"github.com/cinegestor/cinema-admin-console/internal/ptbr"
	"github.com/cinegestor/cinema-admin-console/ui"
)

// templateData carries everything a page can render. Each handler fills in
// only the fields its page needs; there is no shared page state beyond this.
type templateData struct {
	Env     string
	Version string
	Flash   string
	Error   string

	Form   any
	IsEdit bool
	ID     int64

	Movies    []*domain.Movie
	Movie     *domain.Movie
	Rooms     []*domain.Room
	Showtimes []showtimeRow
	Combos    []*domain.SnackCombo
	Orders    []*domain.Order

	Sale    *saleData
	Confirm *confirmData

	PaymentMethods []string
}

// showtimeRow is a showtime joined with its movie and room for display.
// Missing references render placeholders, never a fault.
type showtimeRow struct {
	Showtime   *domain.Showtime
	FilmeNome  string
	SalaNumero string
}

type confirmData struct {
	Title      string
	Message    string
	ConfirmURL string
	CancelURL  string
}

var functions = template.FuncMap{
	"currency": ptbr.Currency,
	"datetime": ptbr.DateTime,
	"date":     ptbr.Date,
	"inputDateTime": func(t time.Time) string {
		return t.Format("2006-01-02T15:04")
	},
	"inputDate": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(ui.Files, "html/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		patterns := []string{
			"html/base.tmpl",
			"html/partials/*.tmpl",
			page,
		}

		ts, err := template.New(name).Funcs(functions).ParseFS(ui.Files, patterns...)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}
