package models

import (
	"time"

	"foxhunt.xyz/fox-referee-service/pkg/protocol"
)

type PlayerStatus string

const (
	StatusNotStarted PlayerStatus = "not-started"
	StatusPrepared   PlayerStatus = "prepared"
	StatusRunning    PlayerStatus = "running"
	StatusFinished   PlayerStatus = "finished"
	StatusWithdrawn  PlayerStatus = "withdrawn"
)

func (s PlayerStatus) Terminal() bool {
	return s == StatusFinished || s == StatusWithdrawn
}

type RecordType string

const (
	RecordFind    RecordType = "find"
	RecordPenalty RecordType = "penalty"
	RecordStart   RecordType = "start"
	RecordFinish  RecordType = "finish"
	RecordOut     RecordType = "out"
)

// Record is one audit line in a player's personal history, surfaced by
// the player detail view.
type Record struct {
	Time   time.Time  `json:"time"`
	Type   RecordType `json:"type"`
	Amount int        `json:"amount"`
}

type Player struct {
	ID            int          `gorm:"primaryKey" json:"id"`
	Group         string       `json:"group"`
	Name          string       `json:"name"`
	CardNumber    *int         `json:"cardNumber"`
	FindSequence  []int        `gorm:"serializer:json" json:"findSequence"`
	FoundSequence []int        `gorm:"serializer:json" json:"foundSequence"`
	StartTime     *time.Time   `json:"startTime"`
	EndTime       *time.Time   `json:"endTime"`
	PenaltyTime   int          `json:"penaltyTime"`
	Status        PlayerStatus `gorm:"type:varchar(20)" json:"status"`
	Records       []Record     `gorm:"serializer:json" json:"-"`
}

// Device is the last-known state of one fox transmitter. Devices are
// registered implicitly by their first telemetry report and are never
// deleted; a stale fox simply stops updating.
type Device struct {
	ShortSN       string                    `json:"shortSN"`
	LastTelemetry *protocol.DeviceTelemetry `json:"lastTelemetry"`
	ConnectedType string                    `json:"connectedType"`
	BaseStationSN []int                     `json:"baseStationSN,omitempty"`
}

type LogEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Level     string    `json:"level"`
	Label     string    `json:"label"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// GameSettings is a single persisted row; ID is always 1.
type GameSettings struct {
	ID                       int  `gorm:"primaryKey" json:"-"`
	LauncherIsEnd            bool `json:"launcherIsEnd"`
	StartAfterLauncherScan   bool `json:"startAfterLauncherScan"`
	OutWhenFoundIncorrectFox bool `json:"outWhenFoundIncorrectFox"`
}
