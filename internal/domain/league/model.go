package league

import (
	"fmt"
	"strings"
)

// Code identifies one competition served by the dashboard.
type Code string

// League is a basketball competition browsable on the dashboard.
type League struct {
	Code      Code
	Name      string
	Slug      string
	IsDefault bool
}

func (l League) Validate() error {
	if l.Code == "" {
		return fmt.Errorf("league code is required")
	}
	if _, ok := AllCodes[l.Code]; !ok {
		return fmt.Errorf("unknown league code %q", l.Code)
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Slug == "" {
		return fmt.Errorf("league slug is required")
	}

	return nil
}

const (
	Euroleague Code = "euroleague"
	Eurocup    Code = "eurocup"
)

// PhaseRegularSeason is the phase used for preview statistics.
const PhaseRegularSeason = "RS"

// PhaseRegularSeasonName is the display name of PhaseRegularSeason.
const PhaseRegularSeasonName = "Regular Season"

// DefaultSize is the number of teams assumed when the standings are unknown.
const DefaultSize = 18

var AllCodes = map[Code]struct{}{
	Euroleague: {},
	Eurocup:    {},
}

// Parse accepts a league code or a navigation slug.
// "international-euroleague" selects the Euroleague, any other "international-*" slug the Eurocup.
func Parse(raw string) (Code, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return "", fmt.Errorf("league is required")
	case value == "international-euroleague":
		return Euroleague, nil
	case strings.HasPrefix(value, "international-"):
		return Eurocup, nil
	}

	code := Code(value)
	if _, ok := AllCodes[code]; !ok {
		return "", fmt.Errorf("unknown league %q", raw)
	}
	return code, nil
}

func (c Code) String() string {
	return string(c)
}
