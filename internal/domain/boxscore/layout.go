package boxscore

import "sort"

// Layout returns the rows of one team ready for display: players by points
// descending (stable), then the team aggregate row and the game total row when present.
func Layout(rows []Row, teamCode string) []Row {
	players := make([]Row, 0, len(rows))
	var (
		teamRow  *Row
		totalRow *Row
	)

	for i := range rows {
		row := rows[i]
		if row.TeamCode != teamCode {
			continue
		}
		switch row.Kind {
		case RowKindTeamAggregate:
			if teamRow == nil {
				teamRow = &row
			}
		case RowKindGameTotal:
			if totalRow == nil {
				totalRow = &row
			}
		default:
			players = append(players, row)
		}
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Points > players[j].Points
	})

	if teamRow != nil {
		players = append(players, *teamRow)
	}
	if totalRow != nil {
		players = append(players, *totalRow)
	}
	return players
}

// Teams lists the distinct team codes in the order they first appear.
func Teams(rows []Row) []string {
	seen := make(map[string]struct{}, 2)
	out := make([]string, 0, 2)
	for _, row := range rows {
		if row.TeamCode == "" {
			continue
		}
		if _, ok := seen[row.TeamCode]; ok {
			continue
		}
		seen[row.TeamCode] = struct{}{}
		out = append(out, row.TeamCode)
	}
	return out
}
