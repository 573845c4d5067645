// Package tally keeps running counts of the characters rolled by this process.
// It listens for generator roll events instead of being called directly, so
// the menu and the generator stay unaware of it.
package tally

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/mcg/internal/entities"
	"github.com/KirkDiggler/mcg/internal/errors"
	"github.com/KirkDiggler/mcg/internal/orchestrators/generator"
	"github.com/KirkDiggler/mcg/internal/pkg/clock"
)

// Summary is a snapshot of the counts
type Summary struct {
	Rolls         int
	RareLineages  int
	Assassins     int
	ByAffiliation map[entities.Affiliation]int
	Elapsed       time.Duration
}

// Lines renders the summary for the console
func (s Summary) Lines() []string {
	return []string{
		fmt.Sprintf("Characters rolled: %d", s.Rolls),
		fmt.Sprintf("Mighty / magical / sneaky: %d / %d / %d",
			s.ByAffiliation[entities.AffiliationMighty],
			s.ByAffiliation[entities.AffiliationMagical],
			s.ByAffiliation[entities.AffiliationSneaky],
		),
		fmt.Sprintf("Vampire blood: %d", s.RareLineages),
		fmt.Sprintf("Morag Tong assassins: %d", s.Assassins),
		fmt.Sprintf("Session length: %s", s.Elapsed.Round(time.Second)),
	}
}

// Config holds the dependencies for the tally
type Config struct {
	EventBus events.EventBus
	Clock    clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Service counts rolls published on the event bus
type Service struct {
	bus            events.EventBus
	clock          clock.Clock
	subscriptionID string
	startedAt      time.Time

	mu            sync.Mutex
	rolls         int
	rareLineages  int
	assassins     int
	byAffiliation map[entities.Affiliation]int
}

// New creates a tally and subscribes it to character roll events
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Service{
		bus:           cfg.EventBus,
		clock:         cfg.Clock,
		startedAt:     cfg.Clock.Now(),
		byAffiliation: make(map[entities.Affiliation]int),
	}
	s.subscriptionID = cfg.EventBus.SubscribeFunc(generator.EventCharacterRolled, 0, s.handleRolled)

	return s, nil
}

func (s *Service) handleRolled(_ context.Context, event events.Event) error {
	c, ok := event.Source().(*entities.Character)
	if !ok {
		return errors.InvalidArgumentf("unexpected roll event source %T", event.Source())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rolls++
	s.byAffiliation[c.Affiliation]++
	if c.RareLineage {
		s.rareLineages++
	}
	if c.Assassin {
		s.assassins++
	}
	return nil
}

// Summary returns the counts so far
func (s *Service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	byAffiliation := make(map[entities.Affiliation]int, len(s.byAffiliation))
	for k, v := range s.byAffiliation {
		byAffiliation[k] = v
	}

	return Summary{
		Rolls:         s.rolls,
		RareLineages:  s.rareLineages,
		Assassins:     s.assassins,
		ByAffiliation: byAffiliation,
		Elapsed:       s.clock.Now().Sub(s.startedAt),
	}
}

// Close stops listening for roll events
func (s *Service) Close() error {
	if err := s.bus.Unsubscribe(s.subscriptionID); err != nil {
		return errors.Wrap(err, "failed to unsubscribe tally")
	}
	return nil
}
