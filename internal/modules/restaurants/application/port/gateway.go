package port

import (
	"context"
	"errors"

	"foodieConsole/internal/modules/restaurants/domain"
)

var (
	ErrNotFound  = errors.New("restaurant not found")
	ErrForbidden = errors.New("restaurant service forbidden")
	ErrNetwork   = errors.New("restaurant service unreachable")
	ErrServer    = errors.New("restaurant service error")
)

// RestaurantGateway is the remote restaurant service.
type RestaurantGateway interface {
	ListRestaurants(ctx context.Context, query domain.PagedQuery) (*domain.ListPage, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, draft domain.Draft) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id string, draft domain.Draft) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) error
}
