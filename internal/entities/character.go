// Package entities holds the character tables and the rolled character type.
package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCharacter is the rpg-toolkit entity type of a rolled character
const EntityTypeCharacter = "character"

// Character is the result of a single roll. It is never persisted.
type Character struct {
	ID          string
	Race        string
	Class       string
	Sign        string
	Affiliation Affiliation
	House       string
	// Lineage is empty when a rare draw found no affiliation to key on.
	Lineage     string
	RareLineage bool
	Faith       string
	Allegiance  string
	Oath        string
	Assassin    bool
	RolledAt    time.Time
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

var _ core.Entity = (*Character)(nil)
