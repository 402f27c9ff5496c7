// Package mocks holds hand-written mocks of the domain service interfaces
// for handler tests.
package mocks

import (
	"context"

	"github.com/cinegestor/cinema-admin-console/internal/domain"
)

type MockMovieService struct {
	domain.MovieService
	GetAllFunc  func(ctx context.Context) ([]*domain.Movie, error)
	GetByIdFunc func(ctx context.Context, id int64) (*domain.Movie, error)
	CreateFunc  func(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	UpdateFunc  func(ctx context.Context, id int64, movie *domain.Movie) (*domain.Movie, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *MockMovieService) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieService) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieService) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieService) Update(ctx context.Context, id int64, movie *domain.Movie) (*domain.Movie, error) {
	return m.UpdateFunc(ctx, id, movie)
}

func (m *MockMovieService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type MockRoomService struct {
	domain.RoomService
	GetAllFunc  func(ctx context.Context) ([]*domain.Room, error)
	GetByIdFunc func(ctx context.Context, id int64) (*domain.Room, error)
	CreateFunc  func(ctx context.Context, room *domain.Room) (*domain.Room, error)
	UpdateFunc  func(ctx context.Context, id int64, room *domain.Room) (*domain.Room, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *MockRoomService) GetAll(ctx context.Context) ([]*domain.Room, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockRoomService) GetById(ctx context.Context, id int64) (*domain.Room, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockRoomService) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	return m.CreateFunc(ctx, room)
}

func (m *MockRoomService) Update(ctx context.Context, id int64, room *domain.Room) (*domain.Room, error) {
	return m.UpdateFunc(ctx, id, room)
}

func (m *MockRoomService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type MockShowtimeService struct {
	domain.ShowtimeService
	GetAllFunc  func(ctx context.Context) ([]*domain.Showtime, error)
	GetByIdFunc func(ctx context.Context, id int64) (*domain.Showtime, error)
	CreateFunc  func(ctx context.Context, showtime *domain.Showtime) (*domain.Showtime, error)
	UpdateFunc  func(ctx context.Context, id int64, showtime *domain.Showtime) (*domain.Showtime, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *MockShowtimeService) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockShowtimeService) GetById(ctx context.Context, id int64) (*domain.Showtime, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowtimeService) Create(ctx context.Context, showtime *domain.Showtime) (*domain.Showtime, error) {
	return m.CreateFunc(ctx, showtime)
}

func (m *MockShowtimeService) Update(ctx context.Context, id int64, showtime *domain.Showtime) (*domain.Showtime, error) {
	return m.UpdateFunc(ctx, id, showtime)
}

func (m *MockShowtimeService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type MockTicketPricingService struct {
	domain.TicketPricingService
	GetAllFunc func(ctx context.Context) ([]*domain.TicketPricing, error)
}

func (m *MockTicketPricingService) GetAll(ctx context.Context) ([]*domain.TicketPricing, error) {
	return m.GetAllFunc(ctx)
}

type MockSnackComboService struct {
	domain.SnackComboService
	GetAllFunc  func(ctx context.Context) ([]*domain.SnackCombo, error)
	GetByIdFunc func(ctx context.Context, id int64) (*domain.SnackCombo, error)
	CreateFunc  func(ctx context.Context, combo *domain.SnackCombo) (*domain.SnackCombo, error)
	UpdateFunc  func(ctx context.Context, id int64, combo *domain.SnackCombo) (*domain.SnackCombo, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *MockSnackComboService) GetAll(ctx context.Context) ([]*domain.SnackCombo, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockSnackComboService) GetById(ctx context.Context, id int64) (*domain.SnackCombo, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockSnackComboService) Create(ctx context.Context, combo *domain.SnackCombo) (*domain.SnackCombo, error) {
	return m.CreateFunc(ctx, combo)
}

func (m *MockSnackComboService) Update(ctx context.Context, id int64, combo *domain.SnackCombo) (*domain.SnackCombo, error) {
	return m.UpdateFunc(ctx, id, combo)
}

func (m *MockSnackComboService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type MockOrderService struct {
	domain.OrderService
	GetAllFunc  func(ctx context.Context) ([]*domain.Order, error)
	GetByIdFunc func(ctx context.Context, id int64) (*domain.Order, error)
	CreateFunc  func(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *MockOrderService) GetAll(ctx context.Context) ([]*domain.Order, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockOrderService) GetById(ctx context.Context, id int64) (*domain.Order, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockOrderService) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return m.CreateFunc(ctx, order)
}

func (m *MockOrderService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}
