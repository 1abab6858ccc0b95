package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dropcatch/internal/storage"
)

func openScoreboardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardShowsPlayerRounds(t *testing.T) {
	store := openScoreboardStore(t)
	for _, r := range []struct {
		player string
		score  int
	}{{"alice", 12}, {"bob", 30}, {"alice", 7}} {
		if err := store.FinishRound(r.player, r.score, "medium"); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "alice", 80, 24)
	if len(m.rounds) != 2 {
		t.Fatalf("loaded %d rounds for alice, expected 2", len(m.rounds))
	}
	if m.stats == nil || m.stats.BestScore != 12 {
		t.Errorf("stats = %+v, expected best 12", m.stats)
	}
	if view := m.View(); !strings.Contains(view, "ROUNDS - alice") || !strings.Contains(view, "best 12") {
		t.Errorf("View() missing title or stats:\n%s", view)
	}

	starred := 0
	for _, row := range m.table.Rows() {
		if strings.HasSuffix(row[2], " *") {
			starred++
			if row[2] != "12 *" {
				t.Errorf("starred score = %q, expected the best round", row[2])
			}
		}
	}
	if starred != 1 {
		t.Errorf("%d rows starred, expected 1", starred)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !m.everyone || len(m.rounds) != 3 {
		t.Errorf("tab should show all 3 rounds, everyone=%v rounds=%d", m.everyone, len(m.rounds))
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(openScoreboardStore(t), "", 80, 24)
	if !m.everyone {
		t.Error("no player should start with everyone's rounds")
	}
	if !strings.Contains(m.View(), "No rounds recorded yet.") {
		t.Error("empty history should say so")
	}

	// Tab is a no-op without a player to switch back to
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(ScoreboardModel).everyone {
		t.Error("tab should keep everyone's rounds when there is no player")
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, "alice", 80, 24)
	if len(m.rounds) != 0 || m.err != nil {
		t.Errorf("nil store should show an empty board, rounds=%d err=%v", len(m.rounds), m.err)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil || next.View() != "" {
		t.Error("esc should quit the scoreboard")
	}
}
