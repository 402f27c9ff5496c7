package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/cinegestor/cinema-admin-console/internal/mocks"
	appvalidator "github.com/cinegestor/cinema-admin-console/internal/validator"
)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	templates, err := newTemplateCache()
	if err != nil {
		t.Fatalf("failed to build template cache: %v", err)
	}

	app := &Application{
		config:         Config{Env: "test"},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		templates:      templates,
		validator:      appvalidator.New(),
		sessionManager: scs.New(),
		movies:         &mocks.MockMovieService{},
		rooms:          &mocks.MockRoomService{},
		showtimes:      &mocks.MockShowtimeService{},
		pricings:       &mocks.MockTicketPricingService{},
		combos:         &mocks.MockSnackComboService{},
		orders:         &mocks.MockOrderService{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// get and postForm drive requests through the full router so the session
// middleware is live, the way a browser would reach the handlers.
func get(t *testing.T, app *Application, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()

	app.routes().ServeHTTP(w, r)

	return w
}

func postForm(t *testing.T, app *Application, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	app.routes().ServeHTTP(w, r)

	return w
}

func assertBodyContains(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()

	if !strings.Contains(w.Body.String(), want) {
		t.Errorf("response body does not contain %q", want)
	}
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}

	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Location = %q, want %q", got, location)
	}
}
