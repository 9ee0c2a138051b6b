package avatar_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/aosike91/Tennis-Ranking/internal/avatar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "Serena Williams", "SW"},
		{"single word repeats its initial", "Serena", "SS"},
		{"first and last of three words", "Serena Jameka Williams", "SW"},
		{"first and last of four words", "Juan Martín del Potro", "JP"},
		{"lower case", "rafael nadal", "RN"},
		{"leading punctuation", "(Roger) Federer", "RF"},
		{"accented", "Ángel Núñez", "ÁN"},
		{"extra spaces", "  Roger   Federer ", "RF"},
		{"empty uses the placeholder name", "", "UU"},
		{"blank uses the placeholder name", "   ", "UU"},
		{"only symbols", "-- !!", "U"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, avatar.Initials(tt.in))
		})
	}
}

func TestColor(t *testing.T) {
	t.Run("stable for the same name", func(t *testing.T) {
		assert.Equal(t, avatar.Color("Roger Federer"), avatar.Color("Roger Federer"))
	})

	t.Run("blank name shares the placeholder colour", func(t *testing.T) {
		assert.Equal(t, avatar.Color("Usuario"), avatar.Color(""))
		assert.Equal(t, avatar.Color("Usuario"), avatar.Color("  "))
	})

	t.Run("uses the palette", func(t *testing.T) {
		for _, name := range []string{"", "a", "Serena Williams", "Rafael Nadal", "Roger Federer"} {
			c := avatar.Color(name)
			assert.True(t, strings.HasPrefix(c, "hsl("), c)
			assert.True(t, strings.HasSuffix(c, " 70% 55%)"), c)
		}
	})
}

func TestSVG(t *testing.T) {
	svg := avatar.SVG("Serena Williams", 64)
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, `width="64"`)
	assert.Contains(t, svg, ">SW</text>")
	assert.Contains(t, svg, avatar.Color("Serena Williams"))

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		assert.Contains(t, avatar.SVG("x", 0), `width="128"`)
	})
}

func TestDataURI(t *testing.T) {
	uri := avatar.DataURI("Rafael Nadal", avatar.DefaultSize)
	const prefix = "data:image/svg+xml;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	assert.Equal(t, avatar.SVG("Rafael Nadal", avatar.DefaultSize), string(decoded))
}
