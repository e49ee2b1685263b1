package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/eventlog"
	"foxhunt.xyz/fox-referee-service/pkg/models"
	_ "foxhunt.xyz/fox-referee-service/pkg/testing"
)

func intPtr(n int) *int {
	return &n
}

func mustCreatePlayer(t *testing.T, g *Game, name string, card *int, seq []int) models.Player {
	t.Helper()
	p, err := g.Players.Create(PlayerInput{Group: "A", Name: name, CardNumber: card, FindSequence: seq})
	require.NoError(t, err)
	return p
}

func TestCreatePlayer(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", intPtr(1001), []int{3, 1, 2})
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, models.StatusNotStarted, p.Status)
	assert.Equal(t, []int{3, 1, 2}, p.FindSequence)
	assert.Empty(t, p.FoundSequence)
	assert.Nil(t, p.StartTime)

	// ids are monotonic and never reused, even across a delete
	p2 := mustCreatePlayer(t, g, "bob", nil, nil)
	assert.Equal(t, 2, p2.ID)
	require.NoError(t, g.Players.Delete(p2.ID))
	p3 := mustCreatePlayer(t, g, "carol", nil, nil)
	assert.Equal(t, 3, p3.ID)
}

func TestCreatePlayer_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	{
		_, err := g.Players.Create(PlayerInput{Name: ""})
		require.ErrorIs(t, err, ErrInvalidArgument)
	}

	{
		_, err := g.Players.Create(PlayerInput{Name: "alice", FindSequence: []int{1, 0}})
		require.ErrorIs(t, err, ErrInvalidArgument)
	}

	{
		_, err := g.Players.Create(PlayerInput{Name: "alice", CardNumber: intPtr(-1)})
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestUpdatePlayer(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", intPtr(1001), []int{1, 2, 3})
	require.NoError(t, g.Players.PrepareToGo(p.ID))
	require.NoError(t, g.Players.Go(p.ID))

	updated, err := g.Players.Update(p.ID, PlayerInput{
		Group:        "B",
		Name:         "alice2",
		CardNumber:   intPtr(2002),
		FindSequence: []int{2, 1},
	})
	require.NoError(t, err)

	// identity fields replaced, race progress untouched
	assert.Equal(t, "alice2", updated.Name)
	assert.Equal(t, "B", updated.Group)
	assert.Equal(t, 2002, *updated.CardNumber)
	assert.Equal(t, models.StatusRunning, updated.Status)
	assert.NotNil(t, updated.StartTime)
}

func TestUpdatePlayer_TruncatesFoundSequence(t *testing.T) {
	common.SetTestLoggerNop()
	g, _ := GetTestGameWithBus(t)

	p := mustCreatePlayer(t, g, "alice", intPtr(1001), []int{3, 1, 2})
	require.NoError(t, g.Players.PrepareToGo(p.ID))
	require.NoError(t, g.Players.Go(p.ID))
	scanFox(t, g, 3, 1001)
	scanFox(t, g, 1, 1001)

	updated, err := g.Players.Update(p.ID, PlayerInput{
		Name:         "alice",
		CardNumber:   intPtr(1001),
		FindSequence: []int{3},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, updated.FoundSequence)
}

func TestUpdatePlayer_NotFound(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	_, err := g.Players.Update(42, PlayerInput{Name: "nobody"})
	require.ErrorIs(t, err, ErrPlayerNotFound)
	require.ErrorIs(t, g.Players.Delete(42), ErrPlayerNotFound)
	_, err = g.Players.Get(42)
	require.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerTransitions(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", nil, []int{1, 2})

	// go is only legal from prepared
	require.ErrorIs(t, g.Players.Go(p.ID), ErrInvalidTransition)

	require.NoError(t, g.Players.PrepareToGo(p.ID))
	require.ErrorIs(t, g.Players.PrepareToGo(p.ID), ErrInvalidTransition)

	// finish is only legal from running
	require.ErrorIs(t, g.Players.Finish(p.ID), ErrInvalidTransition)

	require.NoError(t, g.Players.Go(p.ID))
	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, got.Status)
	require.NotNil(t, got.StartTime)
	require.Len(t, got.Records, 1)
	assert.Equal(t, models.RecordStart, got.Records[0].Type)

	require.NoError(t, g.Players.Finish(p.ID))
	got, err = g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, got.Status)
	require.NotNil(t, got.EndTime)
}

func TestPlayerOut_IdempotentOnTerminal(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", nil, nil)
	require.NoError(t, g.Players.PrepareToGo(p.ID))
	require.NoError(t, g.Players.Go(p.ID))
	require.NoError(t, g.Players.Finish(p.ID))

	// out on a finished player changes nothing and is not an error
	require.NoError(t, g.Players.Out(p.ID))
	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, got.Status)

	p2 := mustCreatePlayer(t, g, "bob", nil, nil)
	require.NoError(t, g.Players.Out(p2.ID))
	got, err = g.Players.Get(p2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWithdrawn, got.Status)
	require.NotNil(t, got.EndTime)
}

func TestPlayerPenalty(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", nil, nil)

	require.ErrorIs(t, g.Players.Penalty(p.ID, -5), ErrInvalidArgument)

	require.NoError(t, g.Players.Penalty(p.ID, 5))
	require.NoError(t, g.Players.Penalty(p.ID, 3))
	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.PenaltyTime)
	require.Len(t, got.Records, 2)
	assert.Equal(t, models.RecordPenalty, got.Records[0].Type)
	assert.Equal(t, 5, got.Records[0].Amount)
}

func TestPlayerReset(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", intPtr(1001), []int{1, 2})
	require.NoError(t, g.Players.PrepareToGo(p.ID))
	require.NoError(t, g.Players.Go(p.ID))
	require.NoError(t, g.Players.Penalty(p.ID, 5))
	require.NoError(t, g.Players.Finish(p.ID))

	require.NoError(t, g.Players.Reset(p.ID))
	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotStarted, got.Status)
	assert.Nil(t, got.StartTime)
	assert.Nil(t, got.EndTime)
	assert.Zero(t, got.PenaltyTime)
	assert.Empty(t, got.FoundSequence)
	assert.Empty(t, got.Records)

	// identity survives a reset
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, []int{1, 2}, got.FindSequence)
	assert.Equal(t, 1001, *got.CardNumber)
}

func TestRefusedCommandLogged(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", nil, nil)
	before := g.Log.Len()

	// an illegal transition is still one auditable logbook entry
	require.ErrorIs(t, g.Players.Go(p.ID), ErrInvalidTransition)
	require.Equal(t, before+1, g.Log.Len())
	entries := g.Log.Recent(1)
	require.Len(t, entries, 1)
	assert.Equal(t, eventlog.LevelWarn, entries[0].Level)
	assert.Equal(t, "player", entries[0].Label)

	// and so are a rejected penalty and a miss on the id
	require.ErrorIs(t, g.Players.Penalty(p.ID, -5), ErrInvalidArgument)
	require.ErrorIs(t, g.Players.Reset(42), ErrPlayerNotFound)
	assert.Equal(t, before+3, g.Log.Len())
}

func TestGoAllAfterPrepare(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	a := mustCreatePlayer(t, g, "alice", nil, nil)
	b := mustCreatePlayer(t, g, "bob", nil, nil)
	require.NoError(t, g.Players.PrepareToGo(a.ID))

	result := g.Players.GoAllAfterPrepare()
	assert.Equal(t, []int{a.ID}, result.Applied)
	assert.Equal(t, []int{b.ID}, result.Skipped)

	gotA, err := g.Players.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, gotA.Status)
	gotB, err := g.Players.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotStarted, gotB.Status)
}

func TestGoAllAfterPrepare_SharedStartTime(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	a := mustCreatePlayer(t, g, "alice", nil, nil)
	b := mustCreatePlayer(t, g, "bob", nil, nil)
	result := g.Players.PrepareAll()
	assert.Len(t, result.Applied, 2)

	g.Players.GoAllAfterPrepare()

	gotA, err := g.Players.Get(a.ID)
	require.NoError(t, err)
	gotB, err := g.Players.Get(b.ID)
	require.NoError(t, err)
	require.NotNil(t, gotA.StartTime)
	require.NotNil(t, gotB.StartTime)
	assert.True(t, gotA.StartTime.Equal(*gotB.StartTime))
}

func TestOutAllBatches(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	running := mustCreatePlayer(t, g, "alice", nil, nil)
	prepared := mustCreatePlayer(t, g, "bob", nil, nil)
	idle := mustCreatePlayer(t, g, "carol", nil, nil)
	require.NoError(t, g.Players.PrepareToGo(running.ID))
	require.NoError(t, g.Players.Go(running.ID))
	require.NoError(t, g.Players.PrepareToGo(prepared.ID))

	result := g.Players.OutAllRunning()
	assert.Equal(t, []int{running.ID}, result.Applied)
	assert.ElementsMatch(t, []int{prepared.ID, idle.ID}, result.Skipped)

	result = g.Players.OutAllNotPrepared()
	assert.Equal(t, []int{idle.ID}, result.Applied)

	gotPrepared, err := g.Players.Get(prepared.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPrepared, gotPrepared.Status)
}

func TestResetAllForPrepare(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	a := mustCreatePlayer(t, g, "alice", nil, nil)
	require.NoError(t, g.Players.PrepareToGo(a.ID))
	require.NoError(t, g.Players.Go(a.ID))
	require.NoError(t, g.Players.Finish(a.ID))
	b := mustCreatePlayer(t, g, "bob", nil, nil)

	result := g.Players.ResetAllForPrepare()
	assert.ElementsMatch(t, []int{a.ID, b.ID}, result.Applied)
	assert.Empty(t, result.Skipped)

	got, err := g.Players.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotStarted, got.Status)
}

func TestClearAllPlayers(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	mustCreatePlayer(t, g, "alice", nil, nil)
	mustCreatePlayer(t, g, "bob", nil, nil)
	require.NoError(t, g.Players.ClearAll())
	assert.Empty(t, g.Players.List())
}

func TestListPlayers_Order(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	for _, name := range []string{"carol", "alice", "bob"} {
		mustCreatePlayer(t, g, name, nil, nil)
	}

	players := g.Players.List()
	require.Len(t, players, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{players[0].ID, players[1].ID, players[2].ID})
	assert.Equal(t, "carol", players[0].Name)
}

func TestListPlayers_SnapshotIsolation(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", nil, []int{1, 2})

	players := g.Players.List()
	require.Len(t, players, 1)
	players[0].FindSequence[0] = 99
	players[0].Name = "mallory"

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got.FindSequence)
	assert.Equal(t, "alice", got.Name)
}

func TestFormatMinSec(t *testing.T) {
	assert.Equal(t, "02:05", formatMinSec(125*time.Second))
	assert.Equal(t, "00:00", formatMinSec(0))
	assert.Equal(t, "00:59", formatMinSec(59*time.Second))
	// minutes pass 99 without wrapping
	assert.Equal(t, "120:01", formatMinSec(2*time.Hour+time.Second))
}

func TestElapsed(t *testing.T) {
	now := time.Now()

	p := &models.Player{}
	assert.Zero(t, Elapsed(p, now))

	start := now.Add(-125 * time.Second)
	p.StartTime = &start
	assert.Equal(t, 125*time.Second, Elapsed(p, now))
	assert.Equal(t, 2, ElapsedMinutes(p, now))
	assert.Equal(t, "02:05", ElapsedMinSec(p, now))

	end := now.Add(-5 * time.Second)
	p.EndTime = &end
	assert.Equal(t, 2*time.Minute, Elapsed(p, now))

	// a clock gone backwards clamps to zero
	future := now.Add(time.Hour)
	p.StartTime = &future
	p.EndTime = nil
	assert.Zero(t, Elapsed(p, now))
}

func TestRanking(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	now := time.Now()
	fast := mustCreatePlayer(t, g, "fast", nil, []int{1, 2})
	slow := mustCreatePlayer(t, g, "slow", nil, []int{1, 2})
	idle := mustCreatePlayer(t, g, "idle", nil, nil)
	_ = idle

	// 9:59 must rank ahead of 10:00; a string sort would invert them
	setRaceWindow(t, g, fast.ID, now.Add(-599*time.Second), &now, models.StatusFinished)
	setRaceWindow(t, g, slow.ID, now.Add(-600*time.Second), nil, models.StatusRunning)

	ranks := g.ranking(now)
	require.Len(t, ranks, 2)
	assert.Equal(t, fast.ID, ranks[0].PlayerID)
	assert.Equal(t, 1, ranks[0].Rank)
	assert.Equal(t, "09:59", ranks[0].TotalDuration)
	assert.Equal(t, "finished", ranks[0].Progress)
	assert.Equal(t, slow.ID, ranks[1].PlayerID)
	assert.Equal(t, "10:00", ranks[1].TotalDuration)
	assert.Equal(t, "0/2", ranks[1].Progress)
}

// setRaceWindow force-fits a player's timing for ranking tests.
func setRaceWindow(t *testing.T, g *Game, id int, start time.Time, end *time.Time, status models.PlayerStatus) {
	t.Helper()
	_, err := g.mutatePlayer(id, func(p *models.Player) error {
		p.StartTime = &start
		p.EndTime = end
		p.Status = status
		return nil
	})
	require.NoError(t, err)
}
