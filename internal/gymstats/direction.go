package gymstats

import (
	"fmt"
	"strings"
)

// Direction tells whether a higher or a lower weight is progress for an exercise.
// Decrease is used for assisted movements, where the counterweight goes down.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// ParseDirection defaults to increase when s is empty.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case "", DirectionIncrease:
		return DirectionIncrease, nil
	case DirectionDecrease:
		return DirectionDecrease, nil
	default:
		return "", fmt.Errorf("%w: unknown improvement direction [%s]", ErrInvalidInput, s)
	}
}

func (d Direction) Valid() bool {
	return d == DirectionIncrease || d == DirectionDecrease
}

// Better reports whether candidate is strictly better than best.
func (d Direction) Better(candidate, best float64) bool {
	if d == DirectionDecrease {
		return candidate < best
	}
	return candidate > best
}

// Side is the body side of a set of a split tracked exercise.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ParseSide returns nil for an empty side.
func ParseSide(s string) (*Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return nil, nil
	case SideLeft:
		side := SideLeft
		return &side, nil
	case SideRight:
		side := SideRight
		return &side, nil
	default:
		return nil, fmt.Errorf("%w: unknown side [%s]", ErrInvalidInput, s)
	}
}
