package domain

import "fmt"

// Part selects which half of a day's puzzle to execute. Only 1 and 2 exist.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// AllParts lists the valid parts in execution order.
var AllParts = []Part{Part1, Part2}

// ParsePart validates a raw selector value. Anything other than 1 or 2 is a
// usage error, not a domain value.
func ParsePart(value int) (Part, error) {
	switch value {
	case 1, 2:
		return Part(value), nil
	default:
		return 0, fmt.Errorf("part %d does not exist, valid parts are 1 and 2", value)
	}
}

func (p Part) String() string {
	return fmt.Sprintf("%d", int(p))
}
