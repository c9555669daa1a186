// Package report formats model outputs for human inspection
package report

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/utils/floatutils"
)

// column is a single right-justified column of a report
type column struct {
	name, value string
	width       int
}

func columns(values []float64, actions []ale.Action) ([]column, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to report")
	}
	if len(values) != len(actions) {
		return nil, fmt.Errorf("invalid number of values\n\twant(%v)"+
			"\n\thave(%v)", len(actions), len(values))
	}

	cols := make([]column, len(values))
	for i, a := range actions {
		name := strings.TrimPrefix(a.String(), ale.NamePrefixA)
		value := fmt.Sprintf("%f", values[i])
		cols[i] = column{
			name:  name,
			value: value,
			width: max(len(name), len(value)) + 1,
		}
	}
	return cols, nil
}

// ActionValues returns a two line report of the value of each action.
// The first line holds the action names without their player prefix
// and the second line holds the values. Each column is right-justified
// to one more than the width of its widest entry.
func ActionValues(values []float64, actions []ale.Action) (string, error) {
	cols, err := columns(values, actions)
	if err != nil {
		return "", fmt.Errorf("actionValues: %v", err)
	}

	var names, vals strings.Builder
	for _, c := range cols {
		fmt.Fprintf(&names, "%*s", c.width, c.name)
		fmt.Fprintf(&vals, "%*s", c.width, c.value)
	}
	return names.String() + "\n" + vals.String() + "\n", nil
}

// Highlight returns the report of ActionValues with the column of the
// highest valued action coloured for terminal output
func Highlight(values []float64, actions []ale.Action) (string, error) {
	cols, err := columns(values, actions)
	if err != nil {
		return "", fmt.Errorf("highlight: %v", err)
	}
	best := floatutils.ArgMax(values)

	var names, vals strings.Builder
	for i, c := range cols {
		name := fmt.Sprintf("%*s", c.width, c.name)
		value := fmt.Sprintf("%*s", c.width, c.value)
		if i == best {
			name = aurora.Bold(aurora.Green(name)).String()
			value = aurora.Bold(aurora.Green(value)).String()
		}
		names.WriteString(name)
		vals.WriteString(value)
	}
	return names.String() + "\n" + vals.String() + "\n", nil
}
