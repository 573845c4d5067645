package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/mcg/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		id := idgen.NewUUID("char").Generate()
		require.True(t, strings.HasPrefix(id, "char_"))

		_, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
		assert.NoError(t, err)
	})

	t.Run("without prefix", func(t *testing.T) {
		g := idgen.NewUUID("")
		first, second := g.Generate(), g.Generate()

		_, err := uuid.Parse(first)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("char")
	assert.Equal(t, "char_1", g.Generate())
	assert.Equal(t, "char_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
