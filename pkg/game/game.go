// Package game is the race-control core: the device registry, the
// player state machine, the tag-match engine and the game settings, all
// owned by one Game container injected into the transport layers.
package game

import (
	"errors"
	"sync"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/db"
	"foxhunt.xyz/fox-referee-service/pkg/eventlog"
	"foxhunt.xyz/fox-referee-service/pkg/models"
	"foxhunt.xyz/fox-referee-service/pkg/protocol"
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrDeviceNotFound    = errors.New("device not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDeviceConstraint  = errors.New("device constraint violation")
)

type PlayerInput struct {
	Group        string
	Name         string
	CardNumber   *int
	FindSequence []int
}

// BatchResult reports per-player outcome of a bulk operation; one
// player failing a guard never aborts the batch.
type BatchResult struct {
	Applied []int `json:"applied"`
	Skipped []int `json:"skipped"`
}

type IPlayers interface {
	Create(input PlayerInput) (models.Player, error)
	Update(id int, input PlayerInput) (models.Player, error)
	Delete(id int) error
	Get(id int) (models.Player, error)
	List() []models.Player
	Ranking() []RankEntry

	PrepareToGo(id int) error
	Go(id int) error
	Finish(id int) error
	Out(id int) error
	Penalty(id int, minutes int) error
	Reset(id int) error

	PrepareAll() BatchResult
	GoAllAfterPrepare() BatchResult
	OutAllRunning() BatchResult
	OutAllNotPrepared() BatchResult
	ResetAllForPrepare() BatchResult
	ClearAll() error
}

type DeviceConfigInput struct {
	FoxNumber  int
	Beep       bool
	Nfc        protocol.NfcStatus
	RfEnable   bool
	RfFreq     int
	RfDuration protocol.RfDuration
}

type IDevices interface {
	UpsertTelemetry(t *protocol.DeviceTelemetry)
	Get(shortSN string) (models.Device, error)
	List() []models.Device
	ApplyConfig(shortSN string, input DeviceConfigInput) (*protocol.DeviceConfig, error)
}

type IMatcher interface {
	// HandleNfcRequest consumes one tag read; a nil response means the
	// read was absorbed without an ack for the fox.
	HandleNfcRequest(req *protocol.NfcRequest) *protocol.NfcResponse
}

type ISettings interface {
	Get() models.GameSettings
	Set(s models.GameSettings) error
	GameReset() error
}

type Game struct {
	Db  *db.DB
	Bus *bus.Bus
	Log *eventlog.Logbook

	mu           sync.RWMutex
	players      map[int]*models.Player
	nextPlayerID int
	devices      map[string]*models.Device
	deviceOrder  []string
	settings     models.GameSettings

	Players  IPlayers
	Devices  IDevices
	Matcher  IMatcher
	Settings ISettings
}

type ServiceOpts struct {
	Players  IPlayers
	Devices  IDevices
	Matcher  IMatcher
	Settings ISettings
}

func DefaultSettings() models.GameSettings {
	return models.GameSettings{
		ID:                       1,
		LauncherIsEnd:            true,
		StartAfterLauncherScan:   false,
		OutWhenFoundIncorrectFox: false,
	}
}

func New(database *db.DB, b *bus.Bus, logbook *eventlog.Logbook) *Game {
	g := &Game{
		Db:           database,
		Bus:          b,
		Log:          logbook,
		players:      make(map[int]*models.Player),
		nextPlayerID: 1,
		devices:      make(map[string]*models.Device),
		settings:     DefaultSettings(),
	}
	return g.WithServices(ServiceOpts{
		Players:  g.GetIPlayers(),
		Devices:  g.GetIDevices(),
		Matcher:  g.GetIMatcher(),
		Settings: g.GetISettings(),
	})
}

func (g *Game) WithServices(opts ServiceOpts) *Game {
	if opts.Players != nil {
		g.Players = opts.Players
	}
	if opts.Devices != nil {
		g.Devices = opts.Devices
	}
	if opts.Matcher != nil {
		g.Matcher = opts.Matcher
	}
	if opts.Settings != nil {
		g.Settings = opts.Settings
	}
	return g
}

// Load restores players and settings persisted by a previous process;
// devices re-register themselves with their next telemetry report.
func (g *Game) Load() error {
	if g.Db == nil {
		return nil
	}

	var players []models.Player
	if err := g.Db.Conn.Order("id asc").Find(&players).Error; err != nil {
		return err
	}

	var settings models.GameSettings
	haveSettings := g.Db.Conn.First(&settings, 1).Error == nil

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range players {
		p := players[i]
		g.players[p.ID] = &p
		if p.ID >= g.nextPlayerID {
			g.nextPlayerID = p.ID + 1
		}
	}
	if haveSettings {
		g.settings = settings
	}
	return nil
}
