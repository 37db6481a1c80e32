package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	games := registry.List()

	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
		assert.NotEmpty(t, g.Title)
	}
	assert.Equal(t, []string{VariantClassic, VariantMarathon, VariantWide}, ids)
}

func TestCreateVariant(t *testing.T) {
	g, err := registry.Create(VariantWide, config.DefaultBlockfallConfig(), 3)
	require.NoError(t, err)

	st := g.State()
	assert.Equal(t, 16, st.Width())
	assert.Equal(t, 24, st.Height())
	assert.Equal(t, VariantWide, g.ID())

	_, err = registry.Create("nope", config.DefaultBlockfallConfig(), 3)
	assert.Error(t, err)
}

func TestClassicVariantIsPermissive(t *testing.T) {
	g, err := registry.Create(VariantClassic, config.DefaultBlockfallConfig(), 3)
	require.NoError(t, err)

	e := g.(*Engine)
	place(e, 0, 0, tRows)
	assert.True(t, e.MovePieceLeft())
	assert.True(t, e.HasCollision())
}

func TestMarathonVariantIsStrict(t *testing.T) {
	g, err := registry.Create(VariantMarathon, config.DefaultBlockfallConfig(), 3)
	require.NoError(t, err)

	e := g.(*Engine)
	place(e, 0, 0, tRows)
	assert.False(t, e.MovePieceLeft())
}

func TestPlayfieldString(t *testing.T) {
	p := NewPlayfield(3, 2)
	p.Set(0, 1, int(PieceT))
	p.Set(2, 1, int(PieceI))
	p.Set(5, 5, int(PieceI))

	assert.Equal(t, "...\nT.I", p.String())
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, pieceColors[PieceI], ColorOf(int(PieceI)))
	assert.Equal(t, pieceColors[PieceL], ColorOf(int(PieceL)))
	assert.NotEqual(t, ColorOf(int(PieceS)), ColorOf(int(PieceZ)))
}
