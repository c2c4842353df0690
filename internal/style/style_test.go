package style

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsHaveOneRunePerComponent(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, int(componentCount), utf8.RuneCountInString(presets[name]))
			_, err := Lookup(name)
			require.NoError(t, err)
		})
	}
}

func TestLookup(t *testing.T) {
	t.Run("case insensitive with dashes", func(t *testing.T) {
		s, err := Lookup("utf8-full")
		require.NoError(t, err)
		assert.Equal(t, UTF8Full, s.Preset())
	})

	t.Run("empty uses default", func(t *testing.T) {
		s, err := Lookup("")
		require.NoError(t, err)
		assert.Equal(t, ASCIIFull, s.Preset())
	})

	t.Run("literal preset string", func(t *testing.T) {
		s, err := Lookup("ab                 ")
		require.NoError(t, err)
		r, ok := s.Char(RightBorder)
		assert.True(t, ok)
		assert.Equal(t, 'b', r)
	})

	t.Run("blank literal is not the default", func(t *testing.T) {
		s, err := Lookup(Nothing)
		require.NoError(t, err)
		assert.Equal(t, "NOTHING", s.Name())
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := Lookup("fancy")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ASCII_FULL")
	})
}

func TestBorderPredicates(t *testing.T) {
	tests := []struct {
		preset            string
		left, right, vert bool
		top, bottom       bool
		header, hlines    bool
	}{
		{preset: ASCIIFull, left: true, right: true, vert: true, top: true, bottom: true, header: true, hlines: true},
		{preset: ASCIIFullCondensed, left: true, right: true, vert: true, top: true, bottom: true, header: true},
		{preset: ASCIINoBorders, vert: true, header: true, hlines: true},
		{preset: ASCIIMarkdown, left: true, right: true, vert: true, header: true},
		{preset: UTF8BordersOnly, left: true, right: true, vert: true, top: true, bottom: true, header: true},
		{preset: Nothing},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			s := MustPreset(tt.preset)
			assert.Equal(t, tt.left, s.DrawLeftBorder(), "left")
			assert.Equal(t, tt.right, s.DrawRightBorder(), "right")
			assert.Equal(t, tt.vert, s.DrawVerticalLines(), "vertical")
			assert.Equal(t, tt.top, s.DrawTopBorder(), "top")
			assert.Equal(t, tt.bottom, s.DrawBottomBorder(), "bottom")
			assert.Equal(t, tt.header, s.DrawHeaderLine(), "header")
			assert.Equal(t, tt.hlines, s.DrawHorizontalLines(), "horizontal")
		})
	}
}

func TestStyleSetAndRemove(t *testing.T) {
	s := MustPreset(Nothing)
	assert.False(t, s.DrawLeftBorder())

	s.Set(LeftBorder, '#')
	assert.True(t, s.DrawLeftBorder())
	assert.Equal(t, '#', s.CharOrSpace(LeftBorder))

	s.Remove(LeftBorder)
	assert.False(t, s.DrawLeftBorder())
	assert.Equal(t, ' ', s.CharOrSpace(LeftBorder))
}

func TestParseAlignment(t *testing.T) {
	for in, want := range map[string]CellAlignment{
		"":       AlignDefault,
		"Left":   AlignLeft,
		"right":  AlignRight,
		"center": AlignCenter,
	} {
		got, err := ParseAlignment(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlignment("justify")
	assert.Error(t, err)
}

func TestStyleName(t *testing.T) {
	assert.Equal(t, "UTF8_FULL", MustPreset(UTF8Full).Name())

	s := MustPreset(ASCIIFull)
	s.Remove(HorizontalLines)
	assert.Equal(t, "", s.Name())
}
