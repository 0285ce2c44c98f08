package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"scout-data-service/internal/domain"
)

// columnAliases maps dataset column spellings that vary across exports to the
// canonical attribute name the record uses.
var columnAliases = map[string]string{
	"value":       "value_eur",
	"wage":        "wage_eur",
	"physicality": "physic",
	"position":    "club_position",
	"club":        "club_name",
	"league":      "league_name",
}

func loadCSV(path string) ([]domain.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("roster: read dataset: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Player{}, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[canonicalColumn(name)] = i
	}

	players := make([]domain.Player, 0, len(rows)-1)
	for _, row := range rows[1:] {
		players = append(players, playerFromRow(columns, row))
	}
	return players, nil
}

func canonicalColumn(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := columnAliases[key]; ok {
		return alias
	}
	return key
}

func playerFromRow(columns map[string]int, row []string) domain.Player {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	number := func(name string) float64 {
		return parseNumber(cell(name))
	}

	p := domain.Player{
		Name:      cell("short_name"),
		FullName:  cell("long_name"),
		AltName:   cell("player_name"),
		Position:  cell("club_position"),
		Overall:   number("overall"),
		Potential: number("potential"),
		Age:       number("age"),
		Value:     number("value_eur"),
		Wage:      number("wage_eur"),
		Pace:      number("pace"),
		Shooting:  number("shooting"),
		Passing:   number("passing"),
		Dribbling: number("dribbling"),
		Defending: number("defending"),
		Physic:    number("physic"),
		Club:      cell("club_name"),
		League:    cell("league_name"),
		FaceURL:   cell("player_face_url"),
	}

	// Any remaining column that names a known attribute becomes an extended
	// sub-attribute (goalkeeping splits, tackle ratings, ...).
	for name := range columns {
		attr := domain.Attribute(name)
		if !domain.KnownAttribute(attr) || isCoreColumn(name) {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[domain.Attribute]float64)
		}
		p.Extra[attr] = number(name)
	}
	return p
}

var coreColumns = map[string]struct{}{
	"overall": {}, "potential": {}, "age": {}, "value_eur": {}, "wage_eur": {},
	"pace": {}, "shooting": {}, "passing": {}, "dribbling": {},
	"defending": {}, "physic": {},
}

func isCoreColumn(name string) bool {
	_, ok := coreColumns[name]
	return ok
}

// parseNumber coerces a raw cell to a finite number, defaulting to 0. This is
// deliberately lossy: a missing or malformed cell must never surface as an
// error or a non-finite value.
func parseNumber(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return normalizeNumber(v)
}
