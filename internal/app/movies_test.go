package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/cinegestor/cinema-admin-console/internal/domain"
	"github.com/cinegestor/cinema-admin-console/internal/mocks"
)

func TestMovieList(t *testing.T) {
	t.Run("renders the fetched movies", func(t *testing.T) {
		app := newTestApplication(t, func(a *Application) {
			a.movies = &mocks.MockMovieService{
				GetAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
					return []*domain.Movie{
						{ID: 1, Titulo: "Matrix", Duracao: 136},
						{ID: 2, Titulo: "Alien", Duracao: 117},
					}, nil
				},
			}
		})

		w := get(t, app, "/filmes")

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}

		assertBodyContains(t, w, "Matrix")
		assertBodyContains(t, w, "Alien")
	})

	t.Run("renders the error page when the backend is down", func(t *testing.T) {
		app := newTestApplication(t, func(a *Application) {
			a.movies = &mocks.MockMovieService{
				GetAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
					return nil, fmt.Errorf("connection refused")
				},
			}
		})

		w := get(t, app, "/filmes")

		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
		}

		assertBodyContains(t, w, "Erro ao carregar filmes")
	})
}

func TestMovieCreateValidation(t *testing.T) {
	validForm := func() url.Values {
		return url.Values{
			"titulo":             {"Matrix"},
			"sinopse":            {"Um hacker descobre a verdade sobre sua realidade."},
			"classificacao":      {"14 anos"},
			"duracao":            {"136"},
			"elenco":             {"Keanu Reeves"},
			"genero":             {"Ficção Científica"},
			"dataInicioExibicao": {"2026-03-01"},
			"dataFinalExibicao":  {"2026-04-01"},
		}
	}

	tests := []struct {
		name     string
		mutate   func(url.Values)
		wantMsg  string
	}{
		{
			name:    "missing title",
			mutate:  func(f url.Values) { f.Set("titulo", "") },
			wantMsg: "Título é obrigatório",
		},
		{
			name:    "whitespace-only title",
			mutate:  func(f url.Values) { f.Set("titulo", "   ") },
			wantMsg: "Título é obrigatório",
		},
		{
			name:    "synopsis too short",
			mutate:  func(f url.Values) { f.Set("sinopse", "curta") },
			wantMsg: "Sinopse deve ter pelo menos 10 caracteres",
		},
		{
			name:    "zero duration",
			mutate:  func(f url.Values) { f.Set("duracao", "0") },
			wantMsg: "Duração é obrigatória e deve ser maior que zero",
		},
		{
			name:    "malformed duration",
			mutate:  func(f url.Values) { f.Set("duracao", "abc") },
			wantMsg: "Duração é obrigatória e deve ser maior que zero",
		},
		{
			name:    "missing exhibition start",
			mutate:  func(f url.Values) { f.Set("dataInicioExibicao", "") },
			wantMsg: "Período de exibição é obrigatório",
		},
		{
			name: "title reported first when everything is missing",
			mutate: func(f url.Values) {
				for key := range f {
					f.Set(key, "")
				}
			},
			wantMsg: "Título é obrigatório",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(t)

			form := validForm()
			tt.mutate(form)

			w := postForm(t, app, "/filmes/novo", form)

			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
			}

			assertBodyContains(t, w, tt.wantMsg)
		})
	}
}

func TestMovieCreate(t *testing.T) {
	var created *domain.Movie

	app := newTestApplication(t, func(a *Application) {
		a.movies = &mocks.MockMovieService{
			CreateFunc: func(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
				created = movie
				return movie, nil
			},
		}
	})

	form := url.Values{
		"titulo":             {"Matrix"},
		"sinopse":            {"Um hacker descobre a verdade sobre sua realidade."},
		"classificacao":      {"14 anos"},
		"duracao":            {"136"},
		"elenco":             {"Keanu Reeves"},
		"genero":             {"Ficção Científica"},
		"dataInicioExibicao": {"2026-03-01"},
		"dataFinalExibicao":  {"2026-04-01"},
	}

	w := postForm(t, app, "/filmes/novo", form)

	assertRedirect(t, w, "/filmes")

	if created == nil {
		t.Fatal("Create was never called")
	}

	if created.Titulo != "Matrix" || created.Duracao != 136 {
		t.Errorf("unexpected movie: %+v", created)
	}

	wantStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !created.DataInicioExibicao.Time.Equal(wantStart) {
		t.Errorf("DataInicioExibicao = %v, want %v", created.DataInicioExibicao.Time, wantStart)
	}
}

func TestMovieUpdate(t *testing.T) {
	var (
		updatedID int64
		updated   *domain.Movie
	)

	app := newTestApplication(t, func(a *Application) {
		a.movies = &mocks.MockMovieService{
			UpdateFunc: func(ctx context.Context, id int64, movie *domain.Movie) (*domain.Movie, error) {
				updatedID = id
				updated = movie
				return movie, nil
			},
		}
	})

	form := url.Values{
		"titulo":             {"Matrix Reloaded"},
		"sinopse":            {"Neo retorna para enfrentar as máquinas mais uma vez."},
		"duracao":            {"138"},
		"dataInicioExibicao": {"2026-05-01"},
		"dataFinalExibicao":  {"2026-06-01"},
	}

	w := postForm(t, app, "/filmes/5/editar", form)

	assertRedirect(t, w, "/filmes")

	if updatedID != 5 {
		t.Errorf("updated ID = %d, want 5", updatedID)
	}

	if updated.Titulo != "Matrix Reloaded" {
		t.Errorf("Titulo = %q", updated.Titulo)
	}
}

func TestMovieCreateBackendFailure(t *testing.T) {
	app := newTestApplication(t, func(a *Application) {
		a.movies = &mocks.MockMovieService{
			CreateFunc: func(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}
	})

	form := url.Values{
		"titulo":             {"Matrix"},
		"sinopse":            {"Um hacker descobre a verdade sobre sua realidade."},
		"duracao":            {"136"},
		"dataInicioExibicao": {"2026-03-01"},
		"dataFinalExibicao":  {"2026-04-01"},
	}

	w := postForm(t, app, "/filmes/novo", form)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}

	assertBodyContains(t, w, "Erro ao salvar filme")
}

func TestMovieDelete(t *testing.T) {
	var deletedID int64

	app := newTestApplication(t, func(a *Application) {
		a.movies = &mocks.MockMovieService{
			DeleteFunc: func(ctx context.Context, id int64) error {
				deletedID = id
				return nil
			},
		}
	})

	w := postForm(t, app, "/filmes/3/excluir", nil)

	assertRedirect(t, w, "/filmes")

	if deletedID != 3 {
		t.Errorf("deleted ID = %d, want 3", deletedID)
	}
}
