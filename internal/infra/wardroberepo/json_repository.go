package wardroberepo

import (
	"context"
	"slices"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
	"github.com/yanqian/outfitter/internal/infra/jsonstore"
)

// JSONRepository keeps the inventory as a JSON array on disk.
type JSONRepository struct {
	doc *jsonstore.Document[[]wardrobe.Item]
}

// NewJSONRepository constructs a repository backed by path.
func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{doc: jsonstore.NewDocument[[]wardrobe.Item](path)}
}

func (r *JSONRepository) List(_ context.Context) ([]wardrobe.Item, error) {
	items, err := r.doc.Read()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []wardrobe.Item{}
	}
	return items, nil
}

func (r *JSONRepository) Get(_ context.Context, id int) (wardrobe.Item, bool, error) {
	items, err := r.doc.Read()
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return wardrobe.Item{}, false, nil
	}
	return items[idx], true, nil
}

func (r *JSONRepository) Create(_ context.Context, item wardrobe.Item) (wardrobe.Item, error) {
	var created wardrobe.Item
	_, err := r.doc.Update(func(items *[]wardrobe.Item) error {
		next := 1
		for _, existing := range *items {
			if existing.ID >= next {
				next = existing.ID + 1
			}
		}
		item.ID = next
		item.Tags = slices.Clone(item.Tags)
		*items = append(*items, item)
		created = item
		return nil
	})
	if err != nil {
		return wardrobe.Item{}, err
	}
	return created, nil
}

func (r *JSONRepository) Update(_ context.Context, id int, mutate func(*wardrobe.Item)) (wardrobe.Item, bool, error) {
	var (
		updated wardrobe.Item
		found   bool
	)
	_, err := r.doc.Update(func(items *[]wardrobe.Item) error {
		idx := indexOf(*items, id)
		if idx < 0 {
			return nil
		}
		mutate(&(*items)[idx])
		updated, found = (*items)[idx], true
		return nil
	})
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	return updated, found, nil
}

func indexOf(items []wardrobe.Item, id int) int {
	return slices.IndexFunc(items, func(it wardrobe.Item) bool { return it.ID == id })
}

var _ wardrobe.Repository = (*JSONRepository)(nil)
