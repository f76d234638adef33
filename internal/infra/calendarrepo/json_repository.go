package calendarrepo

import (
	"context"
	"slices"

	"github.com/yanqian/outfitter/internal/domain/calendar"
	"github.com/yanqian/outfitter/internal/infra/jsonstore"
)

// JSONRepository stores events as a JSON array on disk.
type JSONRepository struct {
	doc *jsonstore.Document[[]calendar.Event]
}

// NewJSONRepository constructs a repository backed by path.
func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{doc: jsonstore.NewDocument[[]calendar.Event](path)}
}

func (r *JSONRepository) List(_ context.Context) ([]calendar.Event, error) {
	events, err := r.doc.Read()
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *JSONRepository) Create(_ context.Context, event calendar.Event) error {
	_, err := r.doc.Update(func(events *[]calendar.Event) error {
		*events = append(*events, event)
		return nil
	})
	return err
}

func (r *JSONRepository) Delete(_ context.Context, id string) (bool, error) {
	removed := false
	_, err := r.doc.Update(func(events *[]calendar.Event) error {
		before := len(*events)
		*events = slices.DeleteFunc(*events, func(ev calendar.Event) bool { return ev.ID == id })
		removed = len(*events) != before
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

var _ calendar.Repository = (*JSONRepository)(nil)
