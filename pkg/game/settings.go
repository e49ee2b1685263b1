package game

import (
	"fmt"

	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

func (g *Game) getSettings() models.GameSettings {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.settings
}

func (g *Game) setSettings(s models.GameSettings) error {
	s.ID = 1

	g.mu.Lock()
	g.settings = s
	g.mu.Unlock()

	g.persistSettings(s)
	g.Log.Info("settings", fmt.Sprintf(
		"game settings updated: launcherIsEnd=%v startAfterLauncherScan=%v outWhenFoundIncorrectFox=%v",
		s.LauncherIsEnd, s.StartAfterLauncherScan, s.OutWhenFoundIncorrectFox))
	return nil
}

func (g *Game) persistSettings(s models.GameSettings) {
	if g.Db == nil {
		return
	}
	err := g.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&s).Error
	if err != nil {
		common.GetLoggerWith(
			common.LoggerNameGameCore,
			zap.String(common.LoggerFieldGameCategory, common.LoggerCategorySettings),
		).Error("failed to persist game settings", zap.Error(err))
	}
}

// gameReset clears the whole field and restores default settings. This
// is the big red button between heats, distinct from a per-player
// reset.
func (g *Game) gameReset() error {
	if err := g.clearAllPlayers(); err != nil {
		return err
	}

	defaults := DefaultSettings()
	g.mu.Lock()
	g.settings = defaults
	g.mu.Unlock()

	g.persistSettings(defaults)
	g.Log.Warn("settings", "game reset: players cleared, settings restored to defaults")
	return nil
}

type ISettingsImpl struct {
	game *Game
}

func (is *ISettingsImpl) Get() models.GameSettings {
	return is.game.getSettings()
}

func (is *ISettingsImpl) Set(s models.GameSettings) error {
	return is.game.setSettings(s)
}

func (is *ISettingsImpl) GameReset() error {
	return is.game.gameReset()
}

func (g *Game) GetISettings() ISettings {
	return &ISettingsImpl{game: g}
}
