// Package store holds the household's users and chores in memory.
//
// The stores are not safe for concurrent use; the app package owns them and
// serializes every access.
package store

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewID returns prefix followed by a time-ordered UUID.
func NewID(prefix string) string {
	return prefix + uuid.Must(uuid.NewV7()).String()
}

// ids hands out identifiers that have never been issued by the same store,
// including ids of records that were since deleted.
type ids struct {
	gen    func() string
	issued map[string]struct{}
}

func newIDs(gen func() string) *ids {
	return &ids{gen: gen, issued: make(map[string]struct{})}
}

func (g *ids) reserve(id string) {
	g.issued[id] = struct{}{}
}

func (g *ids) next() string {
	for {
		id := g.gen()
		if _, taken := g.issued[id]; taken || id == "" {
			continue
		}
		g.reserve(id)
		return id
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
