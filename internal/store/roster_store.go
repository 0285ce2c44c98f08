package store

import (
	"strings"

	"scout-data-service/internal/domain"
)

// RosterStore holds the immutable, ordered player roster. It is built once at
// startup and never written afterward, so concurrent readers need no locking.
type RosterStore struct {
	players       []domain.Player
	hasNameFields bool
}

// NewRosterStore copies the provided records into an immutable store.
func NewRosterStore(players []domain.Player) *RosterStore {
	snapshot := make([]domain.Player, len(players))
	copy(snapshot, players)

	hasNames := false
	for _, p := range snapshot {
		if strings.TrimSpace(p.Name) != "" || strings.TrimSpace(p.FullName) != "" || strings.TrimSpace(p.AltName) != "" {
			hasNames = true
			break
		}
	}

	return &RosterStore{players: snapshot, hasNameFields: hasNames}
}

// Players returns the roster in load order. The slice is a read-only view;
// the store never mutates it after construction.
func (s *RosterStore) Players() []domain.Player {
	return s.players
}

// Len reports the number of loaded records.
func (s *RosterStore) Len() int {
	return len(s.players)
}

// HasNameFields reports whether any record carries a name-like field. When
// false, name search degrades to the full-row fallback.
func (s *RosterStore) HasNameFields() bool {
	return s.hasNameFields
}
