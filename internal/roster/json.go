package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"scout-data-service/internal/domain"
)

// snapshotFile is the JSON dataset shape: either a bare array of records or
// an object with a "players" key, matching exported roster snapshots.
type snapshotFile struct {
	Players []domain.Player `json:"players"`
}

func loadJSON(path string) ([]domain.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: read dataset: %w", err)
	}

	var players []domain.Player
	if err := json.Unmarshal(raw, &players); err == nil {
		return players, nil
	}

	var wrapped snapshotFile
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("roster: decode dataset: %w", err)
	}
	if wrapped.Players == nil {
		return []domain.Player{}, nil
	}
	return wrapped.Players, nil
}
