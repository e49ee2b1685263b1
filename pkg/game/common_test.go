package game

import (
	"testing"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/eventlog"
)

// GetTestGame builds a Game with an in-memory logbook and no database;
// persistence is a no-op so tests exercise the core state machine only.
func GetTestGame(t *testing.T) *Game {
	t.Helper()
	return New(nil, nil, eventlog.New(1024, nil, nil))
}

// GetTestGameWithBus additionally wires a live event bus, for tests
// that assert on published card reads or downlink frames.
func GetTestGameWithBus(t *testing.T) (*Game, *bus.Bus) {
	t.Helper()
	b := bus.New()
	t.Cleanup(func() { _ = b.Close() })
	return New(nil, b, eventlog.New(1024, nil, b)), b
}
