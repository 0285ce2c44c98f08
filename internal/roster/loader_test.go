package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp dataset: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	csv := "short_name,club_position,overall,potential,age,value_eur,wage_eur,pace,shooting,passing,dribbling,defending,physicality,club_name,goalkeeping_diving\n" +
		"L. Messi,RW,93,93,34,78000000,320000,85,92,91,95,34,65,PSG,6\n" +
		"Nameless,,not-a-number,,19,-500,1000,70,,,,,,Club,\n"
	players, err := Load(writeTempFile(t, "players.csv", csv), "")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}

	messi := players[0]
	if messi.Name != "L. Messi" || messi.Position != "RW" {
		t.Fatalf("unexpected identity fields: %+v", messi)
	}
	if messi.Overall != 93 || messi.Value != 78000000 {
		t.Fatalf("unexpected numeric fields: %+v", messi)
	}
	if messi.Physic != 65 {
		t.Fatalf("expected physicality alias to map to physic, got %v", messi.Physic)
	}
	if messi.Extra["goalkeeping_diving"] != 6 {
		t.Fatalf("expected extended attribute, got %v", messi.Extra)
	}

	second := players[1]
	if second.Overall != 0 {
		t.Fatalf("expected unparseable overall to normalize to 0, got %v", second.Overall)
	}
	if second.Potential != 0 || second.Shooting != 0 {
		t.Fatalf("expected missing numerics to normalize to 0: %+v", second)
	}
	if second.Value != 0 {
		t.Fatalf("expected negative monetary value floored at 0, got %v", second.Value)
	}
	if second.Age != 19 {
		t.Fatalf("expected age 19, got %v", second.Age)
	}
}

func TestLoadJSONArray(t *testing.T) {
	payload := `[{"short_name":"K. Mbappe","overall":91,"potential":95,"age":22,"value_eur":160000000}]`
	players, err := Load(writeTempFile(t, "players.json", payload), "")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(players) != 1 || players[0].Name != "K. Mbappe" {
		t.Fatalf("unexpected players: %+v", players)
	}
}

func TestLoadJSONWrapped(t *testing.T) {
	payload := `{"players":[{"short_name":"E. Haaland","overall":88}]}`
	players, err := Load(writeTempFile(t, "roster.json", payload), FormatJSON)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(players) != 1 || players[0].Name != "E. Haaland" {
		t.Fatalf("unexpected players: %+v", players)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("", ""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := Load("does/not/exist.csv", ""); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeTempFile(t, "x.csv", "a\n1\n"), Format("xlsx")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := Load(writeTempFile(t, "bad.json", "{not json"), FormatJSON); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestLoadEmptyCSV(t *testing.T) {
	players, err := Load(writeTempFile(t, "empty.csv", ""), FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected no players, got %d", len(players))
	}
}
