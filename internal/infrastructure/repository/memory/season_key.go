package memory

import "github.com/riskibarqy/courtside/internal/domain/league"

type seasonKey struct {
	league league.Code
	season int
}
