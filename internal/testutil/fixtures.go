package testutil

import (
	"scout-data-service/internal/domain"
	"scout-data-service/internal/store"
)

// SamplePlayer returns a midfield fixture with the provided short name.
func SamplePlayer(name string) domain.Player {
	return domain.Player{
		Name:      name,
		FullName:  name + " Fullname",
		Position:  "CM",
		Overall:   80,
		Potential: 90,
		Age:       23,
		Value:     1_000_000,
		Wage:      10_000,
		Pace:      75,
		Shooting:  70,
		Passing:   82,
		Dribbling: 78,
		Defending: 60,
		Physic:    72,
		Club:      "Test FC",
		League:    "Test League",
	}
}

// RosterWith builds an immutable store from the given players.
func RosterWith(players ...domain.Player) *store.RosterStore {
	return store.NewRosterStore(players)
}
