package airport

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCode = errors.New("invalid IATA airport code")

// SeparatorCode marks a grouping sentinel in the destination list; it is never a real airport.
const SeparatorCode = "---"

type Category string

const (
	CategoryGermany     Category = "germany"
	CategorySchengen    Category = "schengen"
	CategoryNonSchengen Category = "non_schengen"
)

type Airport struct {
	IATA     string
	City     string
	Name     string
	Category Category
}

func (a Airport) IsSeparator() bool {
	return a.IATA == SeparatorCode
}

// DisplayName renders "City - Name (IATA)".
func (a Airport) DisplayName() string {
	return fmt.Sprintf("%s - %s (%s)", a.City, strings.TrimSpace(a.Name), a.IATA)
}

// NormalizeCode trims and upper-cases code and checks it is three ASCII letters.
func NormalizeCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", ErrInvalidCode
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCode
		}
	}
	return c, nil
}
