package game

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/models"
	"foxhunt.xyz/fox-referee-service/pkg/protocol"
)

func scanFox(t *testing.T, g *Game, foxNumber, card int) *protocol.NfcResponse {
	t.Helper()
	return g.Matcher.HandleNfcRequest(&protocol.NfcRequest{
		Type:      protocol.TypeNfcRequest,
		ShortSN:   "SN-1",
		FoxNumber: foxNumber,
		Time:      time.Now().Unix(),
		NfcID:     card,
	})
}

func scanLauncher(t *testing.T, g *Game, card int) *protocol.NfcResponse {
	t.Helper()
	return scanFox(t, g, LauncherFoxNumber, card)
}

func startRunningPlayer(t *testing.T, g *Game, card int, seq []int) models.Player {
	t.Helper()
	p := mustCreatePlayer(t, g, "alice", intPtr(card), seq)
	require.NoError(t, g.Players.PrepareToGo(p.ID))
	require.NoError(t, g.Players.Go(p.ID))
	return p
}

func TestFoxScan_InOrder(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := startRunningPlayer(t, g, 1001, []int{3, 1, 2})

	for i, fox := range []int{3, 1, 2} {
		resp := scanFox(t, g, fox, 1001)
		require.NotNil(t, resp)
		assert.Equal(t, protocol.TypeNfcResponse, resp.Type)
		assert.Equal(t, protocol.NfcRespTag, resp.Status)
		assert.Equal(t, p.ID, resp.PlayerID)

		got, err := g.Players.Get(p.ID)
		require.NoError(t, err)
		assert.Len(t, got.FoundSequence, i+1)
	}

	// a complete find sequence alone never finishes the player
	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, got.Status)
	assert.Equal(t, []int{3, 1, 2}, got.FoundSequence)
	require.Len(t, got.Records, 4) // start + three finds
	assert.Equal(t, models.RecordFind, got.Records[1].Type)
	assert.Equal(t, 3, got.Records[1].Amount)
}

func TestFoxScan_UnknownCard(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	startRunningPlayer(t, g, 1001, []int{1})
	assert.Nil(t, scanFox(t, g, 1, 9999))
}

func TestFoxScan_NotRunning(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := mustCreatePlayer(t, g, "alice", intPtr(1001), []int{1})
	assert.Nil(t, scanFox(t, g, 1, 1001))

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FoundSequence)
}

func TestFoxScan_OutOfOrderDiscarded(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := startRunningPlayer(t, g, 1001, []int{3, 1, 2})

	// fox 1 is not the next control; default policy discards the scan
	assert.Nil(t, scanFox(t, g, 1, 1001))

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, got.Status)
	assert.Empty(t, got.FoundSequence)
}

func TestFoxScan_RepeatFindDiscarded(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := startRunningPlayer(t, g, 1001, []int{3, 1})

	require.NotNil(t, scanFox(t, g, 3, 1001))
	// the radio link retransmits; a second read of a found fox is no find
	assert.Nil(t, scanFox(t, g, 3, 1001))

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got.FoundSequence)
}

func TestFoxScan_OutWhenFoundIncorrectFox(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	settings := g.Settings.Get()
	settings.OutWhenFoundIncorrectFox = true
	require.NoError(t, g.Settings.Set(settings))

	p := startRunningPlayer(t, g, 1001, []int{3, 1, 2})

	resp := scanFox(t, g, 1, 1001)
	require.NotNil(t, resp)
	assert.Equal(t, protocol.NfcRespOut, resp.Status)

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWithdrawn, got.Status)
	assert.Empty(t, got.FoundSequence)
	require.NotNil(t, got.EndTime)
}

func TestFoxScan_RepeatFindNotOutUnderPolicy(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	settings := g.Settings.Get()
	settings.OutWhenFoundIncorrectFox = true
	require.NoError(t, g.Settings.Set(settings))

	p := startRunningPlayer(t, g, 1001, []int{3, 1, 2})

	require.NotNil(t, scanFox(t, g, 3, 1001))
	// a retransmitted read of the fox just found is absorbed, not an
	// out-of-sequence find
	assert.Nil(t, scanFox(t, g, 3, 1001))

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, got.Status)
	assert.Equal(t, []int{3}, got.FoundSequence)

	// a genuinely wrong fox still withdraws
	resp := scanFox(t, g, 2, 1001)
	require.NotNil(t, resp)
	assert.Equal(t, protocol.NfcRespOut, resp.Status)

	got, err = g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWithdrawn, got.Status)
}

func TestLauncherScan_PublishesCardRead(t *testing.T) {
	common.SetTestLoggerNop()
	g, b := GetTestGameWithBus(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	msgs, err := b.Subscribe(ctx, bus.TopicCardRead)
	require.NoError(t, err)

	// an unbound card still announces itself, the console's add-player
	// form binds cards this way
	assert.Nil(t, scanLauncher(t, g, 4242))

	select {
	case msg := <-msgs:
		msg.Ack()
		var ev bus.CardReadEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &ev))
		assert.Equal(t, 4242, ev.CardNumber)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a card read event on the bus")
	}
}

func TestLauncherScan_StartAfterLauncherScan(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	settings := g.Settings.Get()
	settings.StartAfterLauncherScan = true
	require.NoError(t, g.Settings.Set(settings))

	p := mustCreatePlayer(t, g, "alice", intPtr(1001), []int{1})
	require.NoError(t, g.Players.PrepareToGo(p.ID))

	resp := scanLauncher(t, g, 1001)
	require.NotNil(t, resp)
	assert.Equal(t, protocol.NfcRespStart, resp.Status)

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, got.Status)
	require.NotNil(t, got.StartTime)
}

func TestLauncherScan_FinishWhenLauncherIsEnd(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	p := startRunningPlayer(t, g, 1001, []int{1})

	resp := scanLauncher(t, g, 1001)
	require.NotNil(t, resp)
	assert.Equal(t, protocol.NfcRespFinished, resp.Status)

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, got.Status)
}

func TestLauncherScan_Default(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	settings := g.Settings.Get()
	settings.LauncherIsEnd = false
	require.NoError(t, g.Settings.Set(settings))

	p := startRunningPlayer(t, g, 1001, []int{1})

	// running but the launcher is not the finish: just an ack
	resp := scanLauncher(t, g, 1001)
	require.NotNil(t, resp)
	assert.Equal(t, protocol.NfcRespTag, resp.Status)

	got, err := g.Players.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, got.Status)
}

func TestGameReset(t *testing.T) {
	common.SetTestLoggerNop()
	g := GetTestGame(t)

	mustCreatePlayer(t, g, "alice", nil, nil)
	settings := g.Settings.Get()
	settings.OutWhenFoundIncorrectFox = true
	settings.LauncherIsEnd = false
	require.NoError(t, g.Settings.Set(settings))

	require.NoError(t, g.Settings.GameReset())

	assert.Empty(t, g.Players.List())
	got := g.Settings.Get()
	assert.True(t, got.LauncherIsEnd)
	assert.False(t, got.StartAfterLauncherScan)
	assert.False(t, got.OutWhenFoundIncorrectFox)
}
