package game

import (
	"fmt"
	"time"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/models"
	"foxhunt.xyz/fox-referee-service/pkg/protocol"
	"go.uber.org/zap"
)

// LauncherFoxNumber marks the start/finish station; scans on it bind
// cards and drive launcher game rules rather than sequence matching.
const LauncherFoxNumber = 0

// handleNfcRequest is the tag-match engine. Every scan resolves the
// player by card number, then either advances the find sequence,
// applies the incorrect-fox policy, or runs the launcher rules. A nil
// return means no ack is sent back to the fox.
func (g *Game) handleNfcRequest(req *protocol.NfcRequest) *protocol.NfcResponse {
	now := time.Now()

	if req.FoxNumber == LauncherFoxNumber {
		return g.handleLauncherScan(req, now)
	}
	return g.handleFoxScan(req, now)
}

func (g *Game) resolveByCardLocked(cardNumber int) *models.Player {
	for _, p := range g.players {
		if p.CardNumber != nil && *p.CardNumber == cardNumber {
			return p
		}
	}
	return nil
}

func (g *Game) handleFoxScan(req *protocol.NfcRequest, now time.Time) *protocol.NfcResponse {
	g.mu.Lock()
	p := g.resolveByCardLocked(req.NfcID)
	if p == nil {
		g.mu.Unlock()
		g.Log.Warn("match", fmt.Sprintf("fox %d scanned unknown card %d", req.FoxNumber, req.NfcID))
		return nil
	}
	if p.Status != models.StatusRunning {
		id, status := p.ID, p.Status
		g.mu.Unlock()
		g.Log.Warn("match", fmt.Sprintf("player %d scanned fox %d while %s, ignored", id, req.FoxNumber, status))
		return nil
	}

	if len(p.FoundSequence) < len(p.FindSequence) && p.FindSequence[len(p.FoundSequence)] == req.FoxNumber {
		p.FoundSequence = append(p.FoundSequence, req.FoxNumber)
		p.Records = append(p.Records, models.Record{Time: now, Type: models.RecordFind, Amount: req.FoxNumber})
		snap := clonePlayer(p)
		g.mu.Unlock()

		g.persistPlayer(snap)
		g.Log.Info("match", fmt.Sprintf("player %d (%s) found fox %d (%d/%d)",
			snap.ID, snap.Name, req.FoxNumber, len(snap.FoundSequence), len(snap.FindSequence)))
		return &protocol.NfcResponse{
			Type:     protocol.TypeNfcResponse,
			ShortSN:  req.ShortSN,
			NfcID:    req.NfcID,
			PlayerID: snap.ID,
			Status:   protocol.NfcRespTag,
		}
	}

	// the radio link retransmits; a repeat read of the fox the player
	// just found is no find and never triggers the out policy
	if n := len(p.FoundSequence); n > 0 && p.FoundSequence[n-1] == req.FoxNumber {
		id := p.ID
		g.mu.Unlock()
		g.Log.Warn("match", fmt.Sprintf("player %d re-scanned fox %d, discarded", id, req.FoxNumber))
		return nil
	}

	// wrong fox for the player's next control
	outPolicy := g.settings.OutWhenFoundIncorrectFox
	if !outPolicy {
		id := p.ID
		g.mu.Unlock()
		g.Log.Warn("match", fmt.Sprintf("player %d scanned out-of-sequence fox %d, discarded", id, req.FoxNumber))
		return nil
	}

	_ = outLocked(p, now)
	snap := clonePlayer(p)
	g.mu.Unlock()

	g.persistPlayer(snap)
	g.Log.Warn("match", fmt.Sprintf("player %d (%s) out: scanned fox %d out of sequence", snap.ID, snap.Name, req.FoxNumber))
	return &protocol.NfcResponse{
		Type:     protocol.TypeNfcResponse,
		ShortSN:  req.ShortSN,
		NfcID:    req.NfcID,
		PlayerID: snap.ID,
		Status:   protocol.NfcRespOut,
	}
}

func (g *Game) handleLauncherScan(req *protocol.NfcRequest, now time.Time) *protocol.NfcResponse {
	// the console's add/edit form listens for this to bind a card
	if g.Bus != nil {
		if err := g.Bus.PublishJSON(bus.TopicCardRead, bus.CardReadEvent{CardNumber: req.NfcID}); err != nil {
			common.GetLoggerWith(
				common.LoggerNameGameCore,
				zap.String(common.LoggerFieldGameCategory, common.LoggerCategoryMatch),
			).Error("failed to publish card read", zap.Error(err))
		}
	}

	g.mu.Lock()
	settings := g.settings
	p := g.resolveByCardLocked(req.NfcID)
	if p == nil {
		g.mu.Unlock()
		g.Log.Info("match", fmt.Sprintf("launcher read card %d (unbound)", req.NfcID))
		return nil
	}

	switch {
	case p.Status == models.StatusPrepared && settings.StartAfterLauncherScan:
		_ = goLocked(p, now)
		snap := clonePlayer(p)
		g.mu.Unlock()

		g.persistPlayer(snap)
		g.Log.Info("match", fmt.Sprintf("player %d (%s) started by launcher scan", snap.ID, snap.Name))
		return &protocol.NfcResponse{
			Type:     protocol.TypeNfcResponse,
			ShortSN:  req.ShortSN,
			NfcID:    req.NfcID,
			PlayerID: snap.ID,
			Status:   protocol.NfcRespStart,
		}

	case p.Status == models.StatusRunning && settings.LauncherIsEnd:
		// finishing is always an explicit event at the finish device;
		// completing the find sequence alone never finishes a player
		_ = finishLocked(p, now)
		snap := clonePlayer(p)
		g.mu.Unlock()

		g.persistPlayer(snap)
		g.Log.Info("match", fmt.Sprintf("player %d (%s) finished by launcher scan in %s",
			snap.ID, snap.Name, ElapsedMinSec(&snap, now)))
		return &protocol.NfcResponse{
			Type:     protocol.TypeNfcResponse,
			ShortSN:  req.ShortSN,
			NfcID:    req.NfcID,
			PlayerID: snap.ID,
			Status:   protocol.NfcRespFinished,
		}

	default:
		id := p.ID
		g.mu.Unlock()
		g.Log.Info("match", fmt.Sprintf("launcher read card %d (player %d)", req.NfcID, id))
		return &protocol.NfcResponse{
			Type:     protocol.TypeNfcResponse,
			ShortSN:  req.ShortSN,
			NfcID:    req.NfcID,
			PlayerID: id,
			Status:   protocol.NfcRespTag,
		}
	}
}

type IMatcherImpl struct {
	game *Game
}

func (im *IMatcherImpl) HandleNfcRequest(req *protocol.NfcRequest) *protocol.NfcResponse {
	return im.game.handleNfcRequest(req)
}

func (g *Game) GetIMatcher() IMatcher {
	return &IMatcherImpl{game: g}
}
