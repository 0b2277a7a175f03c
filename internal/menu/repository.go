package menu

import (
	"fmt"

	"github.com/google/uuid"
)

// Repository holds the menu catalog. The in-memory implementation is the
// only one; seed data is injected at construction.
type Repository interface {
	ListItems(opts ListOptions) []Item
	GetItem(id string) (Item, error)
	CreateItem(input NewItemInput) (Item, error)
	UpdateItem(input UpdateItemInput) (Item, error)
	SetAvailability(id string, available bool) error

	ListStalls() []Stall
	GetStall(id string) (Stall, error)
	SetStallStatus(id string, status StallStatus) error
}

type repository struct {
	itemOrder  []string
	items      map[string]*Item
	stallOrder []string
	stalls     map[string]*Stall
}

// NewRepository builds a catalog from validated seed data.
func NewRepository(seed Seed) (Repository, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	r := &repository{
		items:  make(map[string]*Item, len(seed.Items)),
		stalls: make(map[string]*Stall, len(seed.Stalls)),
	}

	for _, s := range seed.Stalls {
		stall := Stall{
			ID:       s.ID,
			Name:     s.Name,
			Owner:    s.Owner,
			Location: s.Location,
			Status:   s.Status,
		}
		r.stalls[stall.ID] = &stall
		r.stallOrder = append(r.stallOrder, stall.ID)
	}

	for _, i := range seed.Items {
		item := Item{
			ID:          i.ID,
			Name:        i.Name,
			Category:    i.Category,
			Description: i.Description,
			Price:       i.Price,
			StallID:     i.Stall,
			Available:   i.Available,
		}
		r.items[item.ID] = &item
		r.itemOrder = append(r.itemOrder, item.ID)
	}

	return r, nil
}

// effective reports the item as seen by customers: an item under an
// inactive stall is never available, whatever its own flag says.
func (r *repository) effective(it Item) Item {
	if stall, ok := r.stalls[it.StallID]; ok && stall.Status == StallInactive {
		it.Available = false
	}
	return it
}

func (r *repository) ListItems(opts ListOptions) []Item {
	items := make([]Item, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		it := r.effective(*r.items[id])

		if opts.StallID != "" && it.StallID != opts.StallID {
			continue
		}
		if opts.Category != "" && it.Category != opts.Category {
			continue
		}
		if opts.OnlyAvailable && !it.Available {
			continue
		}
		items = append(items, it)
	}
	return items
}

func (r *repository) GetItem(id string) (Item, error) {
	it, ok := r.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return r.effective(*it), nil
}

func (r *repository) CreateItem(input NewItemInput) (Item, error) {
	if input.Price < 0 {
		return Item{}, ErrInvalidPrice
	}
	if _, ok := r.stalls[input.StallID]; !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrStallNotFound, input.StallID)
	}

	item := Item{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		StallID:     input.StallID,
		Available:   input.Available,
	}
	r.items[item.ID] = &item
	r.itemOrder = append(r.itemOrder, item.ID)

	return r.effective(item), nil
}

func (r *repository) UpdateItem(input UpdateItemInput) (Item, error) {
	it, ok := r.items[input.ID]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, input.ID)
	}

	if input.Price != nil {
		if *input.Price < 0 {
			return Item{}, ErrInvalidPrice
		}
		it.Price = *input.Price
	}
	if input.Name != nil {
		it.Name = *input.Name
	}
	if input.Category != nil {
		it.Category = *input.Category
	}
	if input.Description != nil {
		it.Description = *input.Description
	}
	if input.Available != nil {
		it.Available = *input.Available
	}

	return r.effective(*it), nil
}

func (r *repository) SetAvailability(id string, available bool) error {
	it, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	it.Available = available
	return nil
}

func (r *repository) ListStalls() []Stall {
	stalls := make([]Stall, 0, len(r.stallOrder))
	for _, id := range r.stallOrder {
		stalls = append(stalls, *r.stalls[id])
	}
	return stalls
}

func (r *repository) GetStall(id string) (Stall, error) {
	s, ok := r.stalls[id]
	if !ok {
		return Stall{}, fmt.Errorf("%w: %s", ErrStallNotFound, id)
	}
	return *s, nil
}

func (r *repository) SetStallStatus(id string, status StallStatus) error {
	s, ok := r.stalls[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStallNotFound, id)
	}
	s.Status = status
	return nil
}
