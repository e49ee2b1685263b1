package game

import (
	"fmt"
	"sort"
	"time"

	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

func clonePlayer(p *models.Player) models.Player {
	c := *p
	c.FindSequence = append([]int(nil), p.FindSequence...)
	c.FoundSequence = append([]int(nil), p.FoundSequence...)
	c.Records = append([]models.Record(nil), p.Records...)
	if p.CardNumber != nil {
		n := *p.CardNumber
		c.CardNumber = &n
	}
	if p.StartTime != nil {
		t := *p.StartTime
		c.StartTime = &t
	}
	if p.EndTime != nil {
		t := *p.EndTime
		c.EndTime = &t
	}
	return c
}

func (g *Game) persistPlayer(p models.Player) {
	if g.Db == nil {
		return
	}
	err := g.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&p).Error
	if err != nil {
		common.GetLoggerWith(
			common.LoggerNameGameCore,
			zap.String(common.LoggerFieldGameCategory, common.LoggerCategoryPlayer),
		).Error("failed to persist player", zap.Int("player_id", p.ID), zap.Error(err))
	}
}

func validatePlayerInput(in PlayerInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: player name is empty", ErrInvalidArgument)
	}
	for _, fox := range in.FindSequence {
		if fox < 1 {
			return fmt.Errorf("%w: find sequence contains invalid fox number %d", ErrInvalidArgument, fox)
		}
	}
	if in.CardNumber != nil && *in.CardNumber < 0 {
		return fmt.Errorf("%w: card number must be non-negative", ErrInvalidArgument)
	}
	return nil
}

// refuse records a rejected command in the logbook before handing the
// error back; refused commands must be auditable just like applied
// ones.
func (g *Game) refuse(label, what string, err error) error {
	g.Log.Warn(label, fmt.Sprintf("%s refused: %v", what, err))
	return err
}

// createPlayer always allocates a fresh id; re-submitting the same form
// creates a second player. Ids are never reused within a process.
func (g *Game) createPlayer(in PlayerInput) (models.Player, error) {
	if err := validatePlayerInput(in); err != nil {
		return models.Player{}, g.refuse("player", "player create", err)
	}

	g.mu.Lock()
	id := g.nextPlayerID
	g.nextPlayerID++
	p := &models.Player{
		ID:            id,
		Group:         in.Group,
		Name:          in.Name,
		CardNumber:    in.CardNumber,
		FindSequence:  append([]int(nil), in.FindSequence...),
		FoundSequence: []int{},
		Status:        models.StatusNotStarted,
		Records:       []models.Record{},
	}
	g.players[id] = p
	snap := clonePlayer(p)
	g.mu.Unlock()

	g.persistPlayer(snap)
	g.Log.Info("player", fmt.Sprintf("player %d (%s) created", snap.ID, snap.Name))
	return snap, nil
}

// updatePlayer replaces identity fields only; race progress (status,
// times, found sequence, penalty) is untouched.
func (g *Game) updatePlayer(id int, in PlayerInput) (models.Player, error) {
	if err := validatePlayerInput(in); err != nil {
		return models.Player{}, g.refuse("player", fmt.Sprintf("player %d update", id), err)
	}

	g.mu.Lock()
	p, ok := g.players[id]
	if !ok {
		g.mu.Unlock()
		return models.Player{}, g.refuse("player", fmt.Sprintf("player %d update", id), ErrPlayerNotFound)
	}
	p.Group = in.Group
	p.Name = in.Name
	p.CardNumber = in.CardNumber
	p.FindSequence = append([]int(nil), in.FindSequence...)
	if len(p.FoundSequence) > len(p.FindSequence) {
		p.FoundSequence = p.FoundSequence[:len(p.FindSequence)]
	}
	snap := clonePlayer(p)
	g.mu.Unlock()

	g.persistPlayer(snap)
	g.Log.Info("player", fmt.Sprintf("player %d (%s) updated", snap.ID, snap.Name))
	return snap, nil
}

func (g *Game) deletePlayer(id int) error {
	g.mu.Lock()
	_, ok := g.players[id]
	if !ok {
		g.mu.Unlock()
		return g.refuse("player", fmt.Sprintf("player %d delete", id), ErrPlayerNotFound)
	}
	delete(g.players, id)
	g.mu.Unlock()

	if g.Db != nil {
		if err := g.Db.Conn.Delete(&models.Player{}, id).Error; err != nil {
			return g.refuse("player", fmt.Sprintf("player %d delete", id), err)
		}
	}
	g.Log.Info("player", fmt.Sprintf("player %d deleted", id))
	return nil
}

func (g *Game) getPlayer(id int) (models.Player, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.players[id]
	if !ok {
		return models.Player{}, ErrPlayerNotFound
	}
	return clonePlayer(p), nil
}

// listPlayers copies under the read lock; ids are monotonic so
// ascending id order is creation order.
func (g *Game) listPlayers() []models.Player {
	g.mu.RLock()
	out := make([]models.Player, 0, len(g.players))
	for _, p := range g.players {
		out = append(out, clonePlayer(p))
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// mutatePlayer applies fn to one player under the write lock and
// persists the result. fn returning an error leaves the player
// untouched.
func (g *Game) mutatePlayer(id int, fn func(p *models.Player) error) (models.Player, error) {
	g.mu.Lock()
	p, ok := g.players[id]
	if !ok {
		g.mu.Unlock()
		return models.Player{}, ErrPlayerNotFound
	}
	if err := fn(p); err != nil {
		g.mu.Unlock()
		return models.Player{}, err
	}
	snap := clonePlayer(p)
	g.mu.Unlock()

	g.persistPlayer(snap)
	return snap, nil
}

func prepareToGoLocked(p *models.Player) error {
	if p.Status != models.StatusNotStarted {
		return fmt.Errorf("%w: prepare_to_go from %s", ErrInvalidTransition, p.Status)
	}
	p.Status = models.StatusPrepared
	return nil
}

func goLocked(p *models.Player, now time.Time) error {
	if p.Status != models.StatusPrepared {
		return fmt.Errorf("%w: go from %s", ErrInvalidTransition, p.Status)
	}
	p.Status = models.StatusRunning
	if p.StartTime == nil {
		t := now
		p.StartTime = &t
	}
	p.Records = append(p.Records, models.Record{Time: now, Type: models.RecordStart})
	return nil
}

func finishLocked(p *models.Player, now time.Time) error {
	if p.Status != models.StatusRunning {
		return fmt.Errorf("%w: finish from %s", ErrInvalidTransition, p.Status)
	}
	p.Status = models.StatusFinished
	t := now
	p.EndTime = &t
	p.Records = append(p.Records, models.Record{Time: now, Type: models.RecordFinish})
	return nil
}

// outLocked withdraws the player; on a terminal player it is an
// idempotent no-op, not an error.
func outLocked(p *models.Player, now time.Time) error {
	if p.Status.Terminal() {
		return nil
	}
	p.Status = models.StatusWithdrawn
	if p.EndTime == nil {
		t := now
		p.EndTime = &t
	}
	p.Records = append(p.Records, models.Record{Time: now, Type: models.RecordOut})
	return nil
}

func resetLocked(p *models.Player) {
	p.Status = models.StatusNotStarted
	p.StartTime = nil
	p.EndTime = nil
	p.PenaltyTime = 0
	p.FoundSequence = []int{}
	p.Records = []models.Record{}
}

func (g *Game) prepareToGoPlayer(id int) error {
	snap, err := g.mutatePlayer(id, prepareToGoLocked)
	if err != nil {
		return g.refuse("player", fmt.Sprintf("player %d prepare", id), err)
	}
	g.Log.Info("player", fmt.Sprintf("player %d (%s) prepared", snap.ID, snap.Name))
	return nil
}

func (g *Game) goPlayer(id int) error {
	now := time.Now()
	snap, err := g.mutatePlayer(id, func(p *models.Player) error {
		return goLocked(p, now)
	})
	if err != nil {
		return g.refuse("player", fmt.Sprintf("player %d go", id), err)
	}
	g.Log.Info("player", fmt.Sprintf("player %d (%s) started", snap.ID, snap.Name))
	return nil
}

func (g *Game) finishPlayer(id int) error {
	now := time.Now()
	snap, err := g.mutatePlayer(id, func(p *models.Player) error {
		return finishLocked(p, now)
	})
	if err != nil {
		return g.refuse("player", fmt.Sprintf("player %d finish", id), err)
	}
	g.Log.Info("player", fmt.Sprintf("player %d (%s) finished in %s", snap.ID, snap.Name, ElapsedMinSec(&snap, now)))
	return nil
}

func (g *Game) outPlayer(id int) error {
	now := time.Now()
	snap, err := g.mutatePlayer(id, func(p *models.Player) error {
		return outLocked(p, now)
	})
	if err != nil {
		return g.refuse("player", fmt.Sprintf("player %d out", id), err)
	}
	g.Log.Warn("player", fmt.Sprintf("player %d (%s) out", snap.ID, snap.Name))
	return nil
}

func (g *Game) penaltyPlayer(id int, minutes int) error {
	if minutes < 0 {
		return g.refuse("player", fmt.Sprintf("player %d penalty", id),
			fmt.Errorf("%w: penalty must be non-negative, got %d", ErrInvalidArgument, minutes))
	}
	now := time.Now()
	snap, err := g.mutatePlayer(id, func(p *models.Player) error {
		p.PenaltyTime += minutes
		p.Records = append(p.Records, models.Record{Time: now, Type: models.RecordPenalty, Amount: minutes})
		return nil
	})
	if err != nil {
		return g.refuse("player", fmt.Sprintf("player %d penalty", id), err)
	}
	g.Log.Warn("player", fmt.Sprintf("player %d (%s) penalized %d min, total %d min", snap.ID, snap.Name, minutes, snap.PenaltyTime))
	return nil
}

func (g *Game) resetPlayer(id int) error {
	snap, err := g.mutatePlayer(id, func(p *models.Player) error {
		resetLocked(p)
		return nil
	})
	if err != nil {
		return g.refuse("player", fmt.Sprintf("player %d reset", id), err)
	}
	g.Log.Info("player", fmt.Sprintf("player %d (%s) reset", snap.ID, snap.Name))
	return nil
}

// mutateAll applies fn to every player in id order; fn reports whether
// the player was eligible. Ineligible players are skipped, never an
// aggregate failure.
func (g *Game) mutateAll(fn func(p *models.Player) bool) BatchResult {
	result := BatchResult{Applied: []int{}, Skipped: []int{}}

	g.mu.Lock()
	ids := make([]int, 0, len(g.players))
	for id := range g.players {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	snaps := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		p := g.players[id]
		if fn(p) {
			result.Applied = append(result.Applied, id)
			snaps = append(snaps, clonePlayer(p))
		} else {
			result.Skipped = append(result.Skipped, id)
		}
	}
	g.mu.Unlock()

	for _, snap := range snaps {
		g.persistPlayer(snap)
	}
	return result
}

func (g *Game) prepareAll() BatchResult {
	result := g.mutateAll(func(p *models.Player) bool {
		return prepareToGoLocked(p) == nil
	})
	g.Log.Info("player", fmt.Sprintf("prepared %d players, skipped %d", len(result.Applied), len(result.Skipped)))
	return result
}

// goAllAfterPrepare stamps one shared start time across the whole
// field so nobody gains seconds from iteration order.
func (g *Game) goAllAfterPrepare() BatchResult {
	now := time.Now()
	result := g.mutateAll(func(p *models.Player) bool {
		return goLocked(p, now) == nil
	})
	g.Log.Info("player", fmt.Sprintf("started %d players, skipped %d", len(result.Applied), len(result.Skipped)))
	return result
}

func (g *Game) outAllRunning() BatchResult {
	now := time.Now()
	result := g.mutateAll(func(p *models.Player) bool {
		if p.Status != models.StatusRunning {
			return false
		}
		return outLocked(p, now) == nil
	})
	g.Log.Warn("player", fmt.Sprintf("out %d running players, skipped %d", len(result.Applied), len(result.Skipped)))
	return result
}

func (g *Game) outAllNotPrepared() BatchResult {
	now := time.Now()
	result := g.mutateAll(func(p *models.Player) bool {
		if p.Status != models.StatusNotStarted {
			return false
		}
		return outLocked(p, now) == nil
	})
	g.Log.Warn("player", fmt.Sprintf("out %d unprepared players, skipped %d", len(result.Applied), len(result.Skipped)))
	return result
}

func (g *Game) resetAllForPrepare() BatchResult {
	result := g.mutateAll(func(p *models.Player) bool {
		resetLocked(p)
		return true
	})
	g.Log.Info("player", fmt.Sprintf("reset %d players for a new start", len(result.Applied)))
	return result
}

func (g *Game) clearAllPlayers() error {
	g.mu.Lock()
	g.players = make(map[int]*models.Player)
	g.mu.Unlock()

	if g.Db != nil {
		if err := g.Db.Conn.Where("1 = 1").Delete(&models.Player{}).Error; err != nil {
			return err
		}
	}
	g.Log.Warn("player", "all players cleared")
	return nil
}

type IPlayersImpl struct {
	game *Game
}

func (ip *IPlayersImpl) Create(input PlayerInput) (models.Player, error) {
	return ip.game.createPlayer(input)
}

func (ip *IPlayersImpl) Update(id int, input PlayerInput) (models.Player, error) {
	return ip.game.updatePlayer(id, input)
}

func (ip *IPlayersImpl) Delete(id int) error {
	return ip.game.deletePlayer(id)
}

func (ip *IPlayersImpl) Get(id int) (models.Player, error) {
	return ip.game.getPlayer(id)
}

func (ip *IPlayersImpl) List() []models.Player {
	return ip.game.listPlayers()
}

func (ip *IPlayersImpl) Ranking() []RankEntry {
	return ip.game.ranking(time.Now())
}

func (ip *IPlayersImpl) PrepareToGo(id int) error {
	return ip.game.prepareToGoPlayer(id)
}

func (ip *IPlayersImpl) Go(id int) error {
	return ip.game.goPlayer(id)
}

func (ip *IPlayersImpl) Finish(id int) error {
	return ip.game.finishPlayer(id)
}

func (ip *IPlayersImpl) Out(id int) error {
	return ip.game.outPlayer(id)
}

func (ip *IPlayersImpl) Penalty(id int, minutes int) error {
	return ip.game.penaltyPlayer(id, minutes)
}

func (ip *IPlayersImpl) Reset(id int) error {
	return ip.game.resetPlayer(id)
}

func (ip *IPlayersImpl) PrepareAll() BatchResult {
	return ip.game.prepareAll()
}

func (ip *IPlayersImpl) GoAllAfterPrepare() BatchResult {
	return ip.game.goAllAfterPrepare()
}

func (ip *IPlayersImpl) OutAllRunning() BatchResult {
	return ip.game.outAllRunning()
}

func (ip *IPlayersImpl) OutAllNotPrepared() BatchResult {
	return ip.game.outAllNotPrepared()
}

func (ip *IPlayersImpl) ResetAllForPrepare() BatchResult {
	return ip.game.resetAllForPrepare()
}

func (ip *IPlayersImpl) ClearAll() error {
	return ip.game.clearAllPlayers()
}

func (g *Game) GetIPlayers() IPlayers {
	return &IPlayersImpl{game: g}
}
