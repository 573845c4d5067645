package tally_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mcg/internal/entities"
	"github.com/KirkDiggler/mcg/internal/errors"
	"github.com/KirkDiggler/mcg/internal/orchestrators/generator"
	"github.com/KirkDiggler/mcg/internal/pkg/clock"
	"github.com/KirkDiggler/mcg/internal/pkg/idgen"
	"github.com/KirkDiggler/mcg/internal/services/tally"
	"github.com/KirkDiggler/mcg/internal/testutils"
)

type TallyTestSuite struct {
	suite.Suite
	bus   events.EventBus
	clock *clock.Fixed
	tally *tally.Service
	ctx   context.Context
}

func TestTallySuite(t *testing.T) {
	suite.Run(t, new(TallyTestSuite))
}

func (s *TallyTestSuite) SetupTest() {
	s.bus = events.NewBus()
	s.clock = &clock.Fixed{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()

	var err error
	s.tally, err = tally.New(&tally.Config{
		EventBus: s.bus,
		Clock:    s.clock,
	})
	s.Require().NoError(err)
}

func (s *TallyTestSuite) publish(c *entities.Character) {
	s.Require().NoError(s.bus.Publish(s.ctx, events.NewGameEvent(generator.EventCharacterRolled, c, nil)))
}

func (s *TallyTestSuite) TestNew_Validation() {
	_, err := tally.New(&tally.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "EventBus: is required")
	s.Contains(err.Error(), "Clock: is required")
}

func (s *TallyTestSuite) TestCountsRolls() {
	s.publish(&entities.Character{ID: "char_1", Affiliation: entities.AffiliationMighty})
	s.publish(&entities.Character{ID: "char_2", Affiliation: entities.AffiliationSneaky, RareLineage: true})
	s.publish(&entities.Character{ID: "char_3", Affiliation: entities.AffiliationMighty, Assassin: true})
	s.clock.At = s.clock.At.Add(90 * time.Second)

	summary := s.tally.Summary()
	s.Equal(3, summary.Rolls)
	s.Equal(1, summary.RareLineages)
	s.Equal(1, summary.Assassins)
	s.Equal(2, summary.ByAffiliation[entities.AffiliationMighty])
	s.Equal(1, summary.ByAffiliation[entities.AffiliationSneaky])
	s.Equal(0, summary.ByAffiliation[entities.AffiliationMagical])
	s.Equal(90*time.Second, summary.Elapsed)

	s.Equal([]string{
		"Characters rolled: 3",
		"Mighty / magical / sneaky: 2 / 0 / 1",
		"Vampire blood: 1",
		"Morag Tong assassins: 1",
		"Session length: 1m30s",
	}, summary.Lines())
}

func (s *TallyTestSuite) TestCountsGeneratorRolls() {
	gen, err := generator.NewOrchestrator(&generator.Config{
		DiceRoller:  testutils.LowestRoller(),
		IDGenerator: idgen.NewSequential("char"),
		Clock:       s.clock,
		EventBus:    s.bus,
	})
	s.Require().NoError(err)

	for i := 0; i < 4; i++ {
		_, err := gen.Roll(s.ctx, &generator.RollInput{})
		s.Require().NoError(err)
	}

	summary := s.tally.Summary()
	s.Equal(4, summary.Rolls)
	s.Equal(4, summary.RareLineages)
	s.Equal(4, summary.Assassins)
	s.Equal(4, summary.ByAffiliation[entities.AffiliationMighty])
}

func (s *TallyTestSuite) TestClose() {
	s.Require().NoError(s.tally.Close())

	s.publish(&entities.Character{ID: "char_1", Affiliation: entities.AffiliationMagical})
	s.Equal(0, s.tally.Summary().Rolls)
}

func (s *TallyTestSuite) TestSummaryIsASnapshot() {
	s.publish(&entities.Character{ID: "char_1", Affiliation: entities.AffiliationMagical})

	summary := s.tally.Summary()
	summary.ByAffiliation[entities.AffiliationMagical] = 99

	s.Equal(1, s.tally.Summary().ByAffiliation[entities.AffiliationMagical])
}
