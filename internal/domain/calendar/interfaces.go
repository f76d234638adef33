package calendar

import "context"

// Repository persists calendar events.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, event Event) error
	Delete(ctx context.Context, id string) (bool, error)
}
