package arrangement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConstraint is returned when constraint text cannot be parsed.
var ErrInvalidConstraint = errors.New("invalid column constraint")

// ConstraintKind tags the variant held by a Constraint.
type ConstraintKind int

const (
	// NoConstraint is the zero value: the column is sized by arrangement alone.
	NoConstraint ConstraintKind = iota
	// ContentWidth pins the column to its natural content width.
	ContentWidth
	// AbsoluteWidth pins the column's total width (padding included).
	AbsoluteWidth
	// MinWidth is a lower bound on the column's total width.
	MinWidth
	// MaxWidth is an upper bound on the column's total width.
	MaxWidth
	// Percentage pins the total width to a share of the table width.
	Percentage
	// MinPercentage is a lower bound expressed as a share of the table width.
	MinPercentage
	// MaxPercentage is an upper bound expressed as a share of the table width.
	MaxPercentage
	// Hidden removes the column from layout and output.
	Hidden
)

// Constraint is a per-column sizing directive. Value holds the width for the
// absolute variants and the percentage for the percentage variants.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Content returns a ContentWidth constraint.
func Content() Constraint { return Constraint{Kind: ContentWidth} }

// Absolute returns an AbsoluteWidth constraint.
func Absolute(w int) Constraint { return Constraint{Kind: AbsoluteWidth, Value: w} }

// Min returns a MinWidth constraint.
func Min(w int) Constraint { return Constraint{Kind: MinWidth, Value: w} }

// Max returns a MaxWidth constraint.
func Max(w int) Constraint { return Constraint{Kind: MaxWidth, Value: w} }

// Percent returns a Percentage constraint.
func Percent(p int) Constraint { return Constraint{Kind: Percentage, Value: p} }

// MinPercent returns a MinPercentage constraint.
func MinPercent(p int) Constraint { return Constraint{Kind: MinPercentage, Value: p} }

// MaxPercent returns a MaxPercentage constraint.
func MaxPercent(p int) Constraint { return Constraint{Kind: MaxPercentage, Value: p} }

// Hide returns a Hidden constraint.
func Hide() Constraint { return Constraint{Kind: Hidden} }

// IsSet reports whether the constraint carries any directive.
func (c Constraint) IsSet() bool { return c.Kind != NoConstraint }

// String renders the constraint in the same text form ParseConstraint accepts.
func (c Constraint) String() string {
	switch c.Kind {
	case NoConstraint:
		return ""
	case ContentWidth:
		return "content"
	case AbsoluteWidth:
		return strconv.Itoa(c.Value)
	case MinWidth:
		return "min:" + strconv.Itoa(c.Value)
	case MaxWidth:
		return "max:" + strconv.Itoa(c.Value)
	case Percentage:
		return strconv.Itoa(c.Value) + "%"
	case MinPercentage:
		return "min:" + strconv.Itoa(c.Value) + "%"
	case MaxPercentage:
		return "max:" + strconv.Itoa(c.Value) + "%"
	case Hidden:
		return "hidden"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(c.Kind))
	}
}

// MarshalText lets constraints appear in their text form in YAML/JSON output.
func (c Constraint) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses the text form, so constraints can be read from config files.
func (c *Constraint) UnmarshalText(b []byte) error {
	parsed, err := ParseConstraint(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseConstraint converts text into a Constraint. Accepted forms:
//
//	content        ContentWidth
//	20             AbsoluteWidth(20)
//	min:10         MinWidth(10)
//	max:30         MaxWidth(30)
//	50%            Percentage(50)
//	min:10%        MinPercentage(10)
//	max:50%        MaxPercentage(50)
//	hidden         Hidden
//
// An empty string yields the zero Constraint. Percentages above 100 are accepted.
func ParseConstraint(s string) (Constraint, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	switch text {
	case "":
		return Constraint{}, nil
	case "content":
		return Content(), nil
	case "hidden", "hide":
		return Hide(), nil
	}

	bound := ""
	if prefix, rest, ok := strings.Cut(text, ":"); ok {
		bound = strings.TrimSpace(prefix)
		text = strings.TrimSpace(rest)
		if bound != "min" && bound != "max" {
			return Constraint{}, fmt.Errorf("%w %q: unknown bound %q", ErrInvalidConstraint, s, bound)
		}
	}

	percent := strings.HasSuffix(text, "%")
	text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
	n, err := strconv.Atoi(text)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w %q: %w", ErrInvalidConstraint, s, err)
	}
	if n < 0 {
		return Constraint{}, fmt.Errorf("%w %q: value must be non-negative", ErrInvalidConstraint, s)
	}

	switch {
	case bound == "min" && percent:
		return MinPercent(n), nil
	case bound == "max" && percent:
		return MaxPercent(n), nil
	case bound == "min":
		return Min(n), nil
	case bound == "max":
		return Max(n), nil
	case percent:
		return Percent(n), nil
	default:
		return Absolute(n), nil
	}
}
