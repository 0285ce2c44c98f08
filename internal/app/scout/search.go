package scout

import (
	"strconv"
	"strings"
	"time"

	"scout-data-service/internal/domain"
	"scout-data-service/internal/logging"
)

// Search runs a case-insensitive substring match of the query against the
// record's name-like fields. A blank query yields an empty result, not an
// error. Results come back in roster order, capped at the configured limit.
func (s *Service) Search(query string) []domain.PlayerView {
	start := time.Now()
	views := s.search(query)
	s.metrics.RecordQuery("search", time.Since(start), len(views))
	return views
}

func (s *Service) search(query string) []domain.PlayerView {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []domain.PlayerView{}
	}

	useNameFields := s.store.HasNameFields()
	views := make([]domain.PlayerView, 0, s.searchLimit)
	for _, p := range s.store.Players() {
		if !matchesQuery(p, needle, useNameFields) {
			continue
		}
		views = append(views, s.enrich(p, nil))
		if len(views) >= s.searchLimit {
			break
		}
	}

	logging.Info(s.logger, "name search executed",
		logging.FieldQuery, query,
		logging.FieldCount, len(views),
	)
	return views
}

func matchesQuery(p domain.Player, needle string, useNameFields bool) bool {
	if useNameFields {
		for _, field := range []string{p.Name, p.FullName, p.AltName} {
			if field != "" && strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	}
	// No name-like columns in this dataset: fall back to matching the whole
	// stringified row. Correctness over performance.
	return strings.Contains(rowText(p), needle)
}

func rowText(p domain.Player) string {
	var b strings.Builder
	for _, field := range []string{p.Name, p.FullName, p.AltName, p.Position, p.Club, p.League} {
		if field == "" {
			continue
		}
		b.WriteString(strings.ToLower(field))
		b.WriteByte(' ')
	}
	for _, attr := range domain.Attributes() {
		b.WriteString(strconv.FormatFloat(p.AttributeValue(attr), 'f', -1, 64))
		b.WriteByte(' ')
	}
	return b.String()
}
