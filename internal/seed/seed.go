// Package seed provides the household the service starts with.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dukerupert/chorechart/internal/model"
)

//go:embed fixtures.yaml
var fixtures []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Data is the initial content of the entity store, in display order.
type Data struct {
	Users  []model.User  `yaml:"users" validate:"dive"`
	Chores []model.Chore `yaml:"chores" validate:"dive"`
}

// Default returns the built-in fixtures.
func Default() (Data, error) {
	return Parse(fixtures)
}

// Load reads fixtures from path, or the built-in fixtures when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML fixtures. Unknown fields, invalid records and duplicate
// ids are rejected.
func Parse(b []byte) (Data, error) {
	var d Data
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Data{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := validate.Struct(d); err != nil {
		return Data{}, fmt.Errorf("validate seed: %w", err)
	}
	if err := uniqueIDs(d); err != nil {
		return Data{}, err
	}
	return d, nil
}

func uniqueIDs(d Data) error {
	users := make(map[string]struct{}, len(d.Users))
	for _, u := range d.Users {
		if _, dup := users[u.ID]; dup {
			return fmt.Errorf("duplicate user id %q", u.ID)
		}
		users[u.ID] = struct{}{}
	}
	chores := make(map[string]struct{}, len(d.Chores))
	for _, c := range d.Chores {
		if _, dup := chores[c.ID]; dup {
			return fmt.Errorf("duplicate chore id %q", c.ID)
		}
		chores[c.ID] = struct{}{}
	}
	return nil
}
