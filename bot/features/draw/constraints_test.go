package draw

import (
	"testing"

	"decklab/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstraints(t *testing.T) {
	constraints, err := ParseConstraints("Blue-Eyes White Dragon:1-3, Polymerization:0-1")
	require.NoError(t, err)

	assert.Equal(t, []service.CardConstraint{
		{CardName: "Blue-Eyes White Dragon", Min: 1, Max: 3},
		{CardName: "Polymerization", Min: 0, Max: 1},
	}, constraints)
}

func TestParseConstraints_SingleNumberIsExact(t *testing.T) {
	constraints, err := ParseConstraints("Dark Magician:2")
	require.NoError(t, err)

	require.Len(t, constraints, 1)
	assert.Equal(t, 2, constraints[0].Min)
	assert.Equal(t, 2, constraints[0].Max)
}

func TestParseConstraints_NameMayContainColons(t *testing.T) {
	// Only the last colon separates the range.
	constraints, err := ParseConstraints("Number 39: Utopia:1-2")
	require.NoError(t, err)

	require.Len(t, constraints, 1)
	assert.Equal(t, "Number 39: Utopia", constraints[0].CardName)
}

func TestParseConstraints_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty spec", ""},
		{"missing range", "Dark Magician"},
		{"empty name", ":1-3"},
		{"bad minimum", "Card:x-3"},
		{"bad maximum", "Card:1-y"},
		{"inverted range", "Card:3-1"},
		{"negative count", "Card:-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConstraints(tt.spec)
			assert.Error(t, err)
		})
	}
}
