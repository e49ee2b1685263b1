package game

import (
	"fmt"
	"sort"
	"time"

	"foxhunt.xyz/fox-referee-service/pkg/models"
)

// Elapsed is the player's race duration: start to end, or start to now
// while still running. A player with no start time has zero elapsed,
// never an error.
func Elapsed(p *models.Player, now time.Time) time.Duration {
	if p.StartTime == nil {
		return 0
	}
	end := now
	if p.EndTime != nil {
		end = *p.EndTime
	}
	d := end.Sub(*p.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedMinutes truncates to whole minutes for the player table.
func ElapsedMinutes(p *models.Player, now time.Time) int {
	return int(Elapsed(p, now) / time.Minute)
}

// ElapsedMinSec renders MM:SS for the ranking view; minutes grow past
// 99 without wrapping.
func ElapsedMinSec(p *models.Player, now time.Time) string {
	return formatMinSec(Elapsed(p, now))
}

func formatMinSec(d time.Duration) string {
	mins := int(d / time.Minute)
	secs := int(d/time.Second) % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

type RankEntry struct {
	Rank          int    `json:"rank"`
	PlayerID      int    `json:"playerId"`
	Group         string `json:"group"`
	Name          string `json:"name"`
	TotalDuration string `json:"totalDuration"`
	Progress      string `json:"progress"`
}

// ranking lists finished and still-running players ordered by numeric
// elapsed duration ascending, id as tie-break.
func (g *Game) ranking(now time.Time) []RankEntry {
	g.mu.RLock()
	type ranked struct {
		player  models.Player
		elapsed time.Duration
	}
	candidates := make([]ranked, 0, len(g.players))
	for _, p := range g.players {
		if p.Status != models.StatusRunning && p.Status != models.StatusFinished {
			continue
		}
		candidates = append(candidates, ranked{player: clonePlayer(p), elapsed: Elapsed(p, now)})
	}
	g.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].elapsed != candidates[j].elapsed {
			return candidates[i].elapsed < candidates[j].elapsed
		}
		return candidates[i].player.ID < candidates[j].player.ID
	})

	out := make([]RankEntry, len(candidates))
	for i, c := range candidates {
		progress := fmt.Sprintf("%d/%d", len(c.player.FoundSequence), len(c.player.FindSequence))
		if c.player.Status == models.StatusFinished {
			progress = "finished"
		}
		out[i] = RankEntry{
			Rank:          i + 1,
			PlayerID:      c.player.ID,
			Group:         c.player.Group,
			Name:          c.player.Name,
			TotalDuration: formatMinSec(c.elapsed),
			Progress:      progress,
		}
	}
	return out
}
