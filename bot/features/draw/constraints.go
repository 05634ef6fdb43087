package draw

import (
	"fmt"
	"strconv"
	"strings"

	"decklab/service"
)

// ParseConstraints parses a comma separated constraint spec of the form
// "Card Name:1-3,Other Card:0-1". A single number is shorthand for an
// exact count ("Card:2" means 2-2).
func ParseConstraints(spec string) ([]service.CardConstraint, error) {
	var constraints []service.CardConstraint

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		colon := strings.LastIndex(part, ":")
		if colon < 0 {
			return nil, fmt.Errorf("constraint %q is missing a copy range (use \"Name:min-max\")", part)
		}

		name := strings.TrimSpace(part[:colon])
		if name == "" {
			return nil, fmt.Errorf("constraint %q has an empty card name", part)
		}

		rangeStr := strings.TrimSpace(part[colon+1:])
		min, max, err := parseRange(rangeStr)
		if err != nil {
			return nil, fmt.Errorf("constraint %q: %w", part, err)
		}

		constraints = append(constraints, service.CardConstraint{
			CardName: name,
			Min:      min,
			Max:      max,
		})
	}

	if len(constraints) == 0 {
		return nil, fmt.Errorf("no constraints given")
	}

	return constraints, nil
}

func parseRange(s string) (min, max int, err error) {
	if dash := strings.Index(s, "-"); dash >= 0 {
		min, err = strconv.Atoi(strings.TrimSpace(s[:dash]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid minimum %q", s[:dash])
		}
		max, err = strconv.Atoi(strings.TrimSpace(s[dash+1:]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid maximum %q", s[dash+1:])
		}
	} else {
		min, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid copy count %q", s)
		}
		max = min
	}

	if min < 0 || max < min {
		return 0, 0, fmt.Errorf("range %d-%d is not valid", min, max)
	}

	return min, max, nil
}
