package menu

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type StallSeed struct {
	ID       string      `yaml:"id" validate:"required"`
	Name     string      `yaml:"name" validate:"required"`
	Owner    string      `yaml:"owner"`
	Location string      `yaml:"location"`
	Status   StallStatus `yaml:"status" validate:"oneof=active inactive"`
}

type ItemSeed struct {
	ID          string  `yaml:"id" validate:"required"`
	Name        string  `yaml:"name" validate:"required"`
	Category    string  `yaml:"category" validate:"required"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price" validate:"gte=0"`
	Stall       string  `yaml:"stall" validate:"required"`
	Available   bool    `yaml:"available"`
}

// Seed is the constructor-injected catalog fixture. It comes from a YAML
// file in deployments and from DefaultSeed in the demo and tests.
type Seed struct {
	Stalls []StallSeed `yaml:"stalls" validate:"required,dive"`
	Items  []ItemSeed  `yaml:"items" validate:"dive"`
}

// Validate checks field constraints and that every item references a
// declared stall.
func (s Seed) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	stalls := make(map[string]bool, len(s.Stalls))
	for _, st := range s.Stalls {
		stalls[st.ID] = true
	}
	for _, it := range s.Items {
		if !stalls[it.Stall] {
			return fmt.Errorf("%w: item %q references unknown stall %q", ErrInvalidSeed, it.ID, it.Stall)
		}
	}
	return nil
}

// LoadSeed reads and validates a YAML seed file.
func LoadSeed(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}

	if err := seed.Validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// DefaultSeed returns the built-in campus catalog used when no seed file
// is configured.
func DefaultSeed() Seed {
	return Seed{
		Stalls: []StallSeed{
			{ID: "main-canteen", Name: "Main Canteen", Owner: "Rosa Mendoza", Location: "Ground Floor, Xavier Hall", Status: StallActive},
			{ID: "snack-house", Name: "Snack House", Owner: "Carlos Ramos", Location: "2nd Floor, Student Center", Status: StallActive},
			{ID: "coffee-corner", Name: "Coffee Corner", Owner: "Liza Aquino", Location: "Library Annex", Status: StallActive},
			{ID: "grill-express", Name: "Grill Express", Owner: "Ben Ocampo", Location: "Sports Complex", Status: StallInactive},
		},
		Items: []ItemSeed{
			{ID: "1", Name: "Chicken Adobo Rice", Category: "Main Course", Description: "Classic Filipino chicken adobo with steamed rice", Price: 65, Stall: "main-canteen", Available: true},
			{ID: "2", Name: "Beef Tapa", Category: "Main Course", Description: "Tender marinated beef with garlic fried rice", Price: 75, Stall: "main-canteen", Available: true},
			{ID: "3", Name: "Pancit Canton", Category: "Noodles", Description: "Stir-fried noodles with vegetables and meat", Price: 50, Stall: "snack-house", Available: true},
			{ID: "4", Name: "Burger Steak", Category: "Main Course", Description: "Juicy burger patty with mushroom gravy", Price: 60, Stall: "main-canteen", Available: true},
			{ID: "5", Name: "Spaghetti", Category: "Pasta", Description: "Filipino-style sweet spaghetti with hotdog", Price: 55, Stall: "snack-house", Available: true},
			{ID: "6", Name: "Iced Coffee", Category: "Beverages", Description: "Refreshing cold brew coffee with ice", Price: 45, Stall: "coffee-corner", Available: true},
			{ID: "7", Name: "Halo-Halo", Category: "Desserts", Description: "Classic Filipino mixed dessert with shaved ice", Price: 50, Stall: "snack-house", Available: true},
			{ID: "8", Name: "Bottled Water", Category: "Beverages", Description: "Refreshing purified drinking water", Price: 20, Stall: "coffee-corner", Available: true},
		},
	}
}
