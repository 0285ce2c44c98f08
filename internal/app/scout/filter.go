package scout

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"scout-data-service/internal/domain"
	"scout-data-service/internal/logging"
	"scout-data-service/internal/scoring"
)

// Filter selects roster records matching every named range, ranks the
// survivors by position suitability, and returns the top few enriched with
// projection and negotiation data.
//
// Two deliberately different failure modes are preserved for compatibility
// with the reference behavior: a filter key that resolves to no known column
// is skipped with a diagnostic, while a malformed range aborts the whole
// request with an empty result set (fail-closed, not fail-open).
func (s *Service) Filter(req domain.FilterRequest) domain.FilterResponse {
	start := time.Now()
	views := s.filter(req)
	s.metrics.RecordQuery("filter", time.Since(start), len(views))
	return domain.FilterResponse{Players: views}
}

func (s *Service) filter(req domain.FilterRequest) []domain.PlayerView {
	position := domain.Position(strings.ToUpper(strings.TrimSpace(req.Position)))

	candidates := s.store.Players()
	for key, bounds := range req.Filters {
		attr, ok := resolveFilterKey(key)
		if !ok {
			logging.Warn(s.logger, "filter key not resolvable, skipping",
				logging.FieldFilterKey, key,
			)
			continue
		}

		low, high, err := validateRange(bounds)
		if err != nil {
			logging.Warn(s.logger, "filter aborted",
				logging.FieldFilterKey, key,
				"error", err.Error(),
			)
			return []domain.PlayerView{}
		}

		candidates = filterByRange(candidates, attr, low, high)
	}

	if len(candidates) > scoredPoolLimit {
		candidates = candidates[:scoredPoolLimit]
	}

	overrides := normalizeWeights(req.Weights)
	ranked := make([]scoredPlayer, 0, len(candidates))
	for _, p := range candidates {
		ranked = append(ranked, scoredPlayer{
			player: p,
			score:  scoring.Score(p, position, overrides),
		})
	}
	// Stable sort keeps roster order as the tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > rankedResultLimit {
		ranked = ranked[:rankedResultLimit]
	}

	views := make([]domain.PlayerView, 0, len(ranked))
	for _, entry := range ranked {
		score := entry.score
		views = append(views, s.enrich(entry.player, &score))
	}

	logging.Info(s.logger, "filter query executed",
		logging.FieldPosition, req.Position,
		logging.FieldCount, len(views),
	)
	return views
}

type scoredPlayer struct {
	player domain.Player
	score  float64
}

// resolveFilterKey maps a caller-provided key to a canonical column. Keys
// mentioning value, overall, or age resolve by substring; anything else must
// name a known attribute verbatim (lowercased).
func resolveFilterKey(key string) (domain.Attribute, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	switch {
	case strings.Contains(k, "value"):
		return domain.AttrValue, true
	case strings.Contains(k, "overall"):
		return domain.AttrOverall, true
	case strings.Contains(k, "age"):
		return domain.AttrAge, true
	}
	if attr := domain.Attribute(k); domain.KnownAttribute(attr) {
		return attr, true
	}
	return "", false
}

func validateRange(bounds []float64) (low, high float64, err error) {
	if len(bounds) != 2 {
		return 0, 0, fmt.Errorf("range must be [low, high], got %d bounds", len(bounds))
	}
	low, high = bounds[0], bounds[1]
	if math.IsNaN(low) || math.IsInf(low, 0) || math.IsNaN(high) || math.IsInf(high, 0) {
		return 0, 0, fmt.Errorf("range bounds must be finite")
	}
	return low, high, nil
}

func filterByRange(players []domain.Player, attr domain.Attribute, low, high float64) []domain.Player {
	kept := make([]domain.Player, 0, len(players))
	for _, p := range players {
		v := p.AttributeValue(attr)
		if v >= low && v <= high {
			kept = append(kept, p)
		}
	}
	return kept
}

// normalizeWeights keeps only defined, non-null, finite override weights.
func normalizeWeights(weights map[string]*float64) map[domain.Attribute]float64 {
	if len(weights) == 0 {
		return nil
	}
	out := make(map[domain.Attribute]float64, len(weights))
	for key, w := range weights {
		if w == nil || math.IsNaN(*w) || math.IsInf(*w, 0) {
			continue
		}
		out[domain.Attribute(strings.ToLower(strings.TrimSpace(key)))] = *w
	}
	return out
}
