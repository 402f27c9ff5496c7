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
	"github.com/stretchr/testify/suite"
)

type TicketSaleTestSuite struct {
	suite.Suite
	app          *Application
	createdOrder *domain.Order
}

func (s *TicketSaleTestSuite) SetupTest() {
	s.createdOrder = nil

	s.app = newTestApplication(s.T(), func(a *Application) {
		a.showtimes = &mocks.MockShowtimeService{
			GetByIdFunc: func(ctx context.Context, id int64) (*domain.Showtime, error) {
				return &domain.Showtime{
					ID:      7,
					Horario: domain.NewDateTime(time.Date(2026, 3, 20, 18, 30, 0, 0, time.UTC)),
					Filme:   10,
					Sala:    20,
				}, nil
			},
		}
		a.pricings = &mocks.MockTicketPricingService{
			GetAllFunc: func(ctx context.Context) ([]*domain.TicketPricing, error) {
				return []*domain.TicketPricing{
					{ID: 4, ValorInteira: 20, ValorMeia: 10, Sessao: 7},
					{ID: 5, ValorInteira: 30, ValorMeia: 15, Sessao: 8},
				}, nil
			},
		}
		a.combos = &mocks.MockSnackComboService{
			GetAllFunc: func(ctx context.Context) ([]*domain.SnackCombo, error) {
				return []*domain.SnackCombo{
					{ID: 2, Nome: "Pipoca Grande", ValorUnitario: 7.5, QtUnidade: 2, Subtotal: 15},
				}, nil
			},
		}
		a.orders = &mocks.MockOrderService{
			CreateFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
				s.createdOrder = order
				return order, nil
			},
		}
	})
}

func TestTicketSaleSuite(t *testing.T) {
	suite.Run(t, new(TicketSaleTestSuite))
}

func (s *TicketSaleTestSuite) TestSaleFormShowsPricing() {
	w := get(s.T(), s.app, "/sessoes/7/venda")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "R$ 20,00")
	s.Contains(w.Body.String(), "R$ 10,00")
	s.Contains(w.Body.String(), "Pipoca Grande")
}

func (s *TicketSaleTestSuite) TestSaleFormBlockedWithoutPricing() {
	s.app.pricings = &mocks.MockTicketPricingService{
		GetAllFunc: func(ctx context.Context) ([]*domain.TicketPricing, error) {
			return []*domain.TicketPricing{}, nil
		},
	}

	w := get(s.T(), s.app, "/sessoes/7/venda")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Ingresso não encontrado para esta sessão")
}

func (s *TicketSaleTestSuite) TestSubmitValidation() {
	tests := []struct {
		name    string
		form    url.Values
		wantMsg string
	}{
		{
			name: "no tickets selected",
			form: url.Values{
				"quantidadeInteira": {"0"},
				"quantidadeMeia":    {"0"},
				"metodoPagamento":   {"pix"},
			},
			wantMsg: "Selecione pelo menos um ingresso",
		},
		{
			name: "malformed and negative counts count as zero",
			form: url.Values{
				"quantidadeInteira": {"abc"},
				"quantidadeMeia":    {"-3"},
				"metodoPagamento":   {"pix"},
			},
			wantMsg: "Selecione pelo menos um ingresso",
		},
		{
			name: "missing payment method",
			form: url.Values{
				"quantidadeInteira": {"2"},
				"quantidadeMeia":    {"0"},
				"metodoPagamento":   {""},
			},
			wantMsg: "Selecione um método de pagamento",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			w := postForm(s.T(), s.app, "/sessoes/7/venda", tt.form)

			s.Equal(http.StatusUnprocessableEntity, w.Code)
			s.Contains(w.Body.String(), tt.wantMsg)
			s.Nil(s.createdOrder)
		})
	}
}

func (s *TicketSaleTestSuite) TestSubmitWithCombo() {
	form := url.Values{
		"quantidadeInteira": {"2"},
		"quantidadeMeia":    {"1"},
		"lancheComboId":     {"2"},
		"metodoPagamento":   {"pix"},
	}

	w := postForm(s.T(), s.app, "/sessoes/7/venda", form)

	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/pedidos", w.Header().Get("Location"))

	s.Require().NotNil(s.createdOrder)
	s.Equal(2, s.createdOrder.IngressosInteiraQtd)
	s.Equal(1, s.createdOrder.IngressosMeiaQtd)
	s.Equal(int64(4), s.createdOrder.Ingresso)
	s.Equal([]int64{2}, s.createdOrder.LancheCombos)
	s.Equal(65.0, s.createdOrder.ValorTotal)
	s.Equal("pix", s.createdOrder.MetodoPagamento)
	s.False(s.createdOrder.DataHora.IsZero())
}

func (s *TicketSaleTestSuite) TestSubmitWithoutCombo() {
	form := url.Values{
		"quantidadeInteira": {"2"},
		"quantidadeMeia":    {"1"},
		"metodoPagamento":   {"dinheiro"},
	}

	w := postForm(s.T(), s.app, "/sessoes/7/venda", form)

	s.Equal(http.StatusSeeOther, w.Code)

	s.Require().NotNil(s.createdOrder)
	s.Equal(50.0, s.createdOrder.ValorTotal)

	// The backend rejects a null combo list; it must go out as empty.
	s.NotNil(s.createdOrder.LancheCombos)
	s.Empty(s.createdOrder.LancheCombos)
}

func (s *TicketSaleTestSuite) TestSubmitBlockedWithoutPricing() {
	s.app.pricings = &mocks.MockTicketPricingService{
		GetAllFunc: func(ctx context.Context) ([]*domain.TicketPricing, error) {
			return []*domain.TicketPricing{}, nil
		},
	}

	form := url.Values{
		"quantidadeInteira": {"2"},
		"metodoPagamento":   {"pix"},
	}

	w := postForm(s.T(), s.app, "/sessoes/7/venda", form)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(w.Body.String(), "Ingresso não encontrado para esta sessão")
	s.Nil(s.createdOrder)
}

func (s *TicketSaleTestSuite) TestSubmitBackendFailure() {
	s.app.orders = &mocks.MockOrderService{
		CreateFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}

	form := url.Values{
		"quantidadeInteira": {"1"},
		"metodoPagamento":   {"pix"},
	}

	w := postForm(s.T(), s.app, "/sessoes/7/venda", form)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(w.Body.String(), "Erro ao processar venda")
}
