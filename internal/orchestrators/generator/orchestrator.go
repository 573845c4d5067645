// Package generator implements the character generator: independent uniform
// draws from the character tables plus two rarity checks.
package generator

//go:generate mockgen -destination=mock/mock_service.go -package=generatormock github.com/KirkDiggler/mcg/internal/orchestrators/generator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/mcg/internal/entities"
	"github.com/KirkDiggler/mcg/internal/errors"
	"github.com/KirkDiggler/mcg/internal/pkg/clock"
	"github.com/KirkDiggler/mcg/internal/pkg/idgen"
)

const (
	// EventCharacterRolled is published with the rolled character as source
	EventCharacterRolled = "character.rolled"

	// RarityRange is the size of the uniform range rarity draws come from
	RarityRange = 1000

	// LineageModulus selects a rare blood lineage: 28 of every 1000 draws
	LineageModulus = 37

	// AssassinModulus selects the Morag Tong oath: 77 of every 1000 draws
	AssassinModulus = 13
)

// Service defines the interface for character generation
type Service interface {
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
}

// Config holds the dependencies for the generator
type Config struct {
	DiceRoller  dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// EventBus is optional. When set every roll is published as
	// EventCharacterRolled.
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	diceRoller dice.Roller
	idGen      idgen.Generator
	clock      clock.Clock
	eventBus   events.EventBus
}

// NewOrchestrator creates a new character generator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		diceRoller: cfg.DiceRoller,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
		eventBus:   cfg.EventBus,
	}, nil
}

// Roll assembles one character. Every facet is drawn independently; the sign
// decides the affiliation, which keys the rare lineage text.
func (o *orchestrator) Roll(ctx context.Context, _ *RollInput) (*RollOutput, error) {
	c := &entities.Character{
		ID:       o.idGen.Generate(),
		RolledAt: o.clock.Now(),
	}

	var err error
	if c.Race, err = o.draw(entities.Races); err != nil {
		return nil, err
	}
	if c.Class, err = o.draw(entities.Classes); err != nil {
		return nil, err
	}

	signIndex, err := o.index(entities.Signs.Len())
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw sign")
	}
	c.Sign, _ = entities.Signs.At(signIndex)
	c.Affiliation = entities.AffiliationForSign(signIndex)

	if c.House, err = o.draw(entities.Houses); err != nil {
		return nil, err
	}

	rareBlood, err := o.rare(LineageModulus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw lineage")
	}
	if rareBlood {
		c.RareLineage = true
		if index, ok := entities.RareLineage(c.Affiliation); ok {
			c.Lineage, _ = entities.Lineages.At(index)
		}
	} else {
		c.Lineage, _ = entities.Lineages.At(entities.LineageClean)
	}

	if c.Faith, err = o.draw(entities.Faiths); err != nil {
		return nil, err
	}
	if c.Allegiance, err = o.draw(entities.Allegiances); err != nil {
		return nil, err
	}

	if c.Assassin, err = o.rare(AssassinModulus); err != nil {
		return nil, errors.Wrap(err, "failed to draw oath")
	}
	if c.Assassin {
		c.Oath, _ = entities.Oaths.At(entities.OathAssassin)
	} else {
		c.Oath, _ = entities.Oaths.At(entities.OathInnocent)
	}

	slog.Debug("Character rolled",
		"character_id", c.ID,
		"affiliation", c.Affiliation.String(),
		"rare_lineage", c.RareLineage,
		"assassin", c.Assassin,
	)

	if o.eventBus != nil {
		if err := o.eventBus.Publish(ctx, events.NewGameEvent(EventCharacterRolled, c, nil)); err != nil {
			slog.Warn("Failed to publish roll event",
				"character_id", c.ID,
				"error", err,
			)
		}
	}

	return &RollOutput{
		Character: c,
		Lines:     formatLines(c),
	}, nil
}

// draw picks a uniform entry from table
func (o *orchestrator) draw(table entities.Table) (string, error) {
	i, err := o.index(table.Len())
	if err != nil {
		return "", errors.Wrapf(err, "failed to draw %s", table.Name())
	}

	value, ok := table.At(i)
	if !ok {
		return "", errors.OutOfRangef("index %d outside %s table", i, table.Name())
	}
	return value, nil
}

// index returns a uniform integer in [0, size)
func (o *orchestrator) index(size int) (int, error) {
	face, err := o.diceRoller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if face < 1 || face > size {
		return 0, errors.OutOfRangef("roller returned %d for a d%d", face, size).
			WithMeta("face", face).
			WithMeta("size", size)
	}
	return face - 1, nil
}

// rare draws from [0, RarityRange) and reports whether the value is a
// multiple of modulus
func (o *orchestrator) rare(modulus int) (bool, error) {
	n, err := o.index(RarityRange)
	if err != nil {
		return false, err
	}
	return n%modulus == 0, nil
}
