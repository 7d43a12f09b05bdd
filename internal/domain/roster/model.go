package roster

import (
	"math"
	"strconv"
	"strings"
)

// LooseNumber is an upstream stat that may arrive as a number, a numeric string,
// null or NaN. Use Float to read it.
type LooseNumber struct {
	raw any
}

func Loose(raw any) LooseNumber {
	return LooseNumber{raw: raw}
}

func Number(value float64) LooseNumber {
	return LooseNumber{raw: value}
}

func (n LooseNumber) Raw() any {
	return n.raw
}

// Float returns the coerced value, see Coerce.
func (n LooseNumber) Float() float64 {
	return Coerce(n.raw)
}

// Coerce turns a loosely typed stat into a float64. Nil, unparseable strings,
// unsupported types and NaN all become 0.
func Coerce(raw any) float64 {
	var value float64
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case uint:
		value = float64(v)
	case uint32:
		value = float64(v)
	case uint64:
		value = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		value = parsed
	case interface{ Float64() (float64, error) }:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		value = parsed
	default:
		return 0
	}

	if math.IsNaN(value) {
		return 0
	}
	return value
}

// Entry is a player's per-season aggregate line.
type Entry struct {
	PlayerCode        string
	PlayerName        string
	TeamCode          string
	TeamName          string
	Season            int
	Phase             string
	GamesPlayed       LooseNumber
	Points            LooseNumber
	TotalRebounds     LooseNumber
	Assists           LooseNumber
	ThreePointersMade LooseNumber
}
