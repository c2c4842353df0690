// Package style describes which characters are used to draw a table grid and
// how cell content is aligned inside a column.
package style

import (
	"fmt"
	"strings"
)

// CellAlignment controls the horizontal placement of text inside a column.
// The zero value means "not set" and renders like AlignLeft.
type CellAlignment int

const (
	AlignDefault CellAlignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// ParseAlignment converts "left", "right" or "center" into a CellAlignment.
func ParseAlignment(s string) (CellAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return AlignDefault, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	default:
		return AlignDefault, fmt.Errorf("invalid alignment %q (expected left, right or center)", s)
	}
}

func (a CellAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "default"
	}
}

// MarshalText lets alignments show up by name in YAML/JSON layout dumps.
func (a CellAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// TableComponent identifies one drawable part of the grid. The order matches
// the rune positions inside a preset string.
type TableComponent int

const (
	LeftBorder TableComponent = iota
	RightBorder
	TopBorder
	BottomBorder
	LeftHeaderIntersection
	HeaderLines
	MiddleHeaderIntersections
	RightHeaderIntersection
	VerticalLines
	HorizontalLines
	MiddleIntersections
	LeftBorderIntersections
	RightBorderIntersections
	TopBorderIntersections
	BottomBorderIntersections
	TopLeftCorner
	TopRightCorner
	BottomLeftCorner
	BottomRightCorner

	componentCount
)

var componentNames = [componentCount]string{
	"LeftBorder",
	"RightBorder",
	"TopBorder",
	"BottomBorder",
	"LeftHeaderIntersection",
	"HeaderLines",
	"MiddleHeaderIntersections",
	"RightHeaderIntersection",
	"VerticalLines",
	"HorizontalLines",
	"MiddleIntersections",
	"LeftBorderIntersections",
	"RightBorderIntersections",
	"TopBorderIntersections",
	"BottomBorderIntersections",
	"TopLeftCorner",
	"TopRightCorner",
	"BottomLeftCorner",
	"BottomRightCorner",
}

func (c TableComponent) String() string {
	if c < 0 || c >= componentCount {
		return fmt.Sprintf("TableComponent(%d)", int(c))
	}
	return componentNames[c]
}

// Style maps every TableComponent to the rune used to draw it.
// A component set to ' ' (or never set) is not drawn.
type Style struct {
	chars [componentCount]rune
}

// FromPreset builds a Style from a preset string holding exactly one rune per
// TableComponent.
func FromPreset(preset string) (Style, error) {
	var s Style
	runes := []rune(preset)
	if len(runes) != int(componentCount) {
		return s, fmt.Errorf("preset must contain %d characters, got %d", componentCount, len(runes))
	}
	copy(s.chars[:], runes)
	return s, nil
}

// MustPreset is FromPreset for the built-in presets.
func MustPreset(preset string) Style {
	s, err := FromPreset(preset)
	if err != nil {
		panic(err)
	}
	return s
}

// Preset returns the style back in preset-string form.
func (s Style) Preset() string {
	out := make([]rune, componentCount)
	for i, r := range s.chars {
		if r == 0 {
			r = ' '
		}
		out[i] = r
	}
	return string(out)
}

// Char returns the rune for a component and whether it is drawn at all.
func (s Style) Char(c TableComponent) (rune, bool) {
	if c < 0 || c >= componentCount {
		return ' ', false
	}
	r := s.chars[c]
	if r == 0 || r == ' ' {
		return ' ', false
	}
	return r, true
}

// CharOrSpace returns the component rune, or a space if it is not drawn.
func (s Style) CharOrSpace(c TableComponent) rune {
	r, _ := s.Char(c)
	return r
}

// Has reports whether a component is drawn.
func (s Style) Has(c TableComponent) bool {
	_, ok := s.Char(c)
	return ok
}

// Set replaces a single component.
func (s *Style) Set(c TableComponent, r rune) {
	if c < 0 || c >= componentCount {
		return
	}
	s.chars[c] = r
}

// Remove stops a component from being drawn.
func (s *Style) Remove(c TableComponent) {
	s.Set(c, ' ')
}

func (s Style) hasAny(cs ...TableComponent) bool {
	for _, c := range cs {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// DrawLeftBorder reports whether a left border column is drawn on any line.
func (s Style) DrawLeftBorder() bool {
	return s.hasAny(LeftBorder, LeftHeaderIntersection, LeftBorderIntersections, TopLeftCorner, BottomLeftCorner)
}

// DrawRightBorder reports whether a right border column is drawn on any line.
func (s Style) DrawRightBorder() bool {
	return s.hasAny(RightBorder, RightHeaderIntersection, RightBorderIntersections, TopRightCorner, BottomRightCorner)
}

// DrawVerticalLines reports whether a separator column sits between adjacent
// visible columns.
func (s Style) DrawVerticalLines() bool {
	return s.hasAny(VerticalLines, MiddleIntersections, MiddleHeaderIntersections, TopBorderIntersections, BottomBorderIntersections)
}

// DrawTopBorder reports whether the line above the first row is drawn.
func (s Style) DrawTopBorder() bool {
	return s.hasAny(TopBorder, TopBorderIntersections, TopLeftCorner, TopRightCorner)
}

// DrawBottomBorder reports whether the line below the last row is drawn.
func (s Style) DrawBottomBorder() bool {
	return s.hasAny(BottomBorder, BottomBorderIntersections, BottomLeftCorner, BottomRightCorner)
}

// DrawHeaderLine reports whether the header is separated from the body.
func (s Style) DrawHeaderLine() bool {
	return s.hasAny(HeaderLines, MiddleHeaderIntersections, LeftHeaderIntersection, RightHeaderIntersection)
}

// DrawHorizontalLines reports whether a separator line is drawn between body rows.
func (s Style) DrawHorizontalLines() bool {
	return s.hasAny(HorizontalLines, MiddleIntersections, LeftBorderIntersections, RightBorderIntersections)
}
