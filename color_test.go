package termpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	themed := Ambient{Foreground: 0xe, Background: 0x1}
	tests := []struct {
		name     string
		palette  Palette
		color    Color
		role     Role
		ambient  Ambient
		expected int
	}{
		{"ansi red fg", ANSIPalette, Red, Foreground, ANSIAmbient, 31},
		{"ansi red bg", ANSIPalette, Red, Background, ANSIAmbient, 41},
		{"ansi black fg", ANSIPalette, Black, Foreground, ANSIAmbient, 30},
		{"ansi white bg", ANSIPalette, White, Background, ANSIAmbient, 47},
		{"ansi yellow", ANSIPalette, Yellow, Foreground, ANSIAmbient, 33},
		{"ansi default fg", ANSIPalette, Default, Foreground, ANSIAmbient, 39},
		{"ansi default bg", ANSIPalette, Default, Background, ANSIAmbient, 49},
		{"console red", ConsolePalette, Red, Foreground, themed, 0x4},
		{"console cyan bg", ConsolePalette, Cyan, Background, themed, 0x3},
		{"console brown", ConsolePalette, Brown, Foreground, themed, 0x6},
		{"console default fg follows theme", ConsolePalette, Default, Foreground, themed, 0xe},
		{"console default bg follows theme", ConsolePalette, Default, Background, themed, 0x1},
		{"screen blue", ScreenPalette, Blue, Foreground, Ambient{}, 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.palette.Resolve(test.color, test.role, test.ambient))
		})
	}
}

func TestResolveDefaultNeverFixed(t *testing.T) {
	for _, a := range []Ambient{{1, 2}, {7, 0}, {15, 15}} {
		assert.Equal(t, a.Foreground, ConsolePalette.Resolve(Default, Foreground, a))
		assert.Equal(t, a.Background, ConsolePalette.Resolve(Default, Background, a))
	}
}

func TestResolveUnknown(t *testing.T) {
	assert.Panics(t, func() {
		ANSIPalette.Resolve(Color(42), Foreground, ANSIAmbient)
	})
	assert.Panics(t, func() {
		ANSIPalette.Resolve(Red, Role(9), ANSIAmbient)
	})
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "brown", Yellow.String())
	assert.Equal(t, "magenta", Magenta.String())
	assert.Equal(t, "color(99)", Color(99).String())
}
