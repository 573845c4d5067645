package generator

import "github.com/KirkDiggler/mcg/internal/entities"

// RollInput defines the request for rolling a character
type RollInput struct{}

// RollOutput defines the response for rolling a character
type RollOutput struct {
	Character *entities.Character
	// Lines is the framed description, one display line per entry, without
	// trailing newlines.
	Lines []string
}
