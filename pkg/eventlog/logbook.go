// Package eventlog keeps the append-only system log: a bounded
// in-memory ring serving the console's log queries, written through to
// sqlite for audit and published on the bus for live streaming.
package eventlog

import (
	"sync"
	"time"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/db"
	"foxhunt.xyz/fox-referee-service/pkg/models"
	"go.uber.org/zap"
)

// DefaultCapacity covers the largest limit the console has ever asked
// for in one request.
const DefaultCapacity = 160000

const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

type Logbook struct {
	mu     sync.Mutex
	ring   []models.LogEntry
	head   int // index of the oldest entry
	count  int
	nextID int64

	db  *db.DB
	bus *bus.Bus
}

func New(capacity int, database *db.DB, b *bus.Bus) *Logbook {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Logbook{
		ring:   make([]models.LogEntry, capacity),
		nextID: 1,
		db:     database,
		bus:    b,
	}
}

// Load restores the most recent entries from the database after a
// restart, so log ids keep increasing across process lifetimes.
func (l *Logbook) Load() error {
	if l.db == nil {
		return nil
	}

	var entries []models.LogEntry
	err := l.db.Conn.
		Order("id desc").
		Limit(len(l.ring)).
		Find(&entries).Error
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.head = 0
	l.count = 0
	// entries arrive newest first
	for i := len(entries) - 1; i >= 0; i-- {
		l.ring[l.count] = entries[i]
		l.count++
	}
	if len(entries) > 0 {
		l.nextID = entries[0].ID + 1
	}
	return nil
}

// Append writes one immutable entry and returns it. Ids are strictly
// increasing in insertion order; once the ring is full the oldest entry
// is evicted.
func (l *Logbook) Append(level, label, message string) models.LogEntry {
	l.mu.Lock()
	entry := models.LogEntry{
		ID:        l.nextID,
		Level:     level,
		Label:     label,
		Message:   message,
		Timestamp: time.Now(),
	}
	l.nextID++

	if l.count < len(l.ring) {
		l.ring[(l.head+l.count)%len(l.ring)] = entry
		l.count++
	} else {
		l.ring[l.head] = entry
		l.head = (l.head + 1) % len(l.ring)
	}
	l.mu.Unlock()

	logger := common.GetLoggerWith(common.LoggerNameLogbook, zap.String("label", label))
	switch level {
	case LevelError:
		logger.Error(message)
	case LevelWarn:
		logger.Warn(message)
	default:
		logger.Info(message)
	}

	if l.db != nil {
		if err := l.db.Conn.Create(&entry).Error; err != nil {
			logger.Error("failed to persist log entry", zap.Error(err))
		}
	}
	if l.bus != nil {
		if err := l.bus.PublishJSON(bus.TopicLogEntries, entry); err != nil {
			logger.Error("failed to publish log entry", zap.Error(err))
		}
	}

	return entry
}

func (l *Logbook) Info(label, message string) models.LogEntry {
	return l.Append(LevelInfo, label, message)
}

func (l *Logbook) Warn(label, message string) models.LogEntry {
	return l.Append(LevelWarn, label, message)
}

func (l *Logbook) Error(label, message string) models.LogEntry {
	return l.Append(LevelError, label, message)
}

// Recent returns the most recent limit entries in ascending id order,
// which is how the console displays them.
func (l *Logbook) Recent(limit int) []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > l.count {
		limit = l.count
	}
	out := make([]models.LogEntry, limit)
	start := l.count - limit
	for i := range limit {
		out[i] = l.ring[(l.head+start+i)%len(l.ring)]
	}
	return out
}

func (l *Logbook) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
