// Package roster loads the player dataset into memory at startup. The loader
// is the normalization boundary: every numeric cell that cannot be parsed as
// a finite number is stored as 0, so the engines never see NaN or Inf.
package roster

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"scout-data-service/internal/domain"
)

// Format selects the dataset file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Load reads the dataset at path. When format is empty it is inferred from
// the file extension, defaulting to CSV.
func Load(path string, format Format) ([]domain.Player, error) {
	if path == "" {
		return nil, fmt.Errorf("roster: dataset path required")
	}
	if format == "" {
		format = inferFormat(path)
	}

	var (
		players []domain.Player
		err     error
	)
	switch format {
	case FormatJSON:
		players, err = loadJSON(path)
	case FormatCSV:
		players, err = loadCSV(path)
	default:
		return nil, fmt.Errorf("roster: unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, err
	}

	for i := range players {
		sanitizePlayer(&players[i])
	}
	return players, nil
}

func inferFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatCSV
}

// sanitizePlayer enforces the load-boundary invariant on a decoded record:
// non-finite numerics become 0 and monetary fields are floored at 0.
func sanitizePlayer(p *domain.Player) {
	p.Overall = normalizeNumber(p.Overall)
	p.Potential = normalizeNumber(p.Potential)
	p.Age = normalizeNumber(p.Age)
	p.Value = clampNonNegative(normalizeNumber(p.Value))
	p.Wage = clampNonNegative(normalizeNumber(p.Wage))
	p.Pace = normalizeNumber(p.Pace)
	p.Shooting = normalizeNumber(p.Shooting)
	p.Passing = normalizeNumber(p.Passing)
	p.Dribbling = normalizeNumber(p.Dribbling)
	p.Defending = normalizeNumber(p.Defending)
	p.Physic = normalizeNumber(p.Physic)
	for attr, v := range p.Extra {
		p.Extra[attr] = normalizeNumber(v)
	}
}

func normalizeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
