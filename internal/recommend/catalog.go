package recommend

import (
	"errors"
	"fmt"
	"strings"

	"RestaurantAssistant/internal/entity"
)

var (
	ErrEmptyName     = errors.New("restaurant name is empty")
	ErrDuplicateName = errors.New("duplicate restaurant name")
	ErrMaxGuests     = errors.New("max_guests must not be negative")
)

// Catalog is the read-only restaurant list. It is built once and shared by
// every session.
type Catalog struct {
	restaurants []entity.Restaurant
	byName      map[string]int
}

func NewCatalog(restaurants []entity.Restaurant) (*Catalog, error) {
	c := &Catalog{
		restaurants: make([]entity.Restaurant, 0, len(restaurants)),
		byName:      make(map[string]int, len(restaurants)),
	}

	for i, r := range restaurants {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			return nil, fmt.Errorf("restaurant #%d: %w", i, ErrEmptyName)
		}
		if r.MaxGuests < 0 {
			return nil, fmt.Errorf("restaurant %q: %w", r.Name, ErrMaxGuests)
		}
		key := strings.ToLower(r.Name)
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("restaurant %q: %w", r.Name, ErrDuplicateName)
		}

		c.byName[key] = len(c.restaurants)
		c.restaurants = append(c.restaurants, r.Clone())
	}

	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.restaurants)
}

// At returns a copy of the i-th restaurant in load order.
func (c *Catalog) At(i int) entity.Restaurant {
	return c.restaurants[i].Clone()
}

// Lookup finds a restaurant by name, ignoring case and surrounding space.
func (c *Catalog) Lookup(name string) (entity.Restaurant, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return entity.Restaurant{}, false
	}
	return c.restaurants[i].Clone(), true
}

func (c *Catalog) All() []entity.Restaurant {
	out := make([]entity.Restaurant, len(c.restaurants))
	for i, r := range c.restaurants {
		out[i] = r.Clone()
	}
	return out
}

// Texts returns the text indexed for each restaurant, in load order.
func (c *Catalog) Texts() []string {
	texts := make([]string, len(c.restaurants))
	for i, r := range c.restaurants {
		texts[i] = r.Description()
	}
	return texts
}
