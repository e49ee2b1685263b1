package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/models"
)

func (rs *RestfulServer) GetLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid limit"})
		return
	}
	respondOK(c, gin.H{"logs": rs.Log.Recent(limit)})
}

func (rs *RestfulServer) GetGameSettings(c *gin.Context) {
	respondOK(c, gin.H{"settings": rs.Game.Settings.Get()})
}

type GameSettingsRequest struct {
	LauncherIsEnd            bool `json:"launcherIsEnd"`
	StartAfterLauncherScan   bool `json:"startAfterLauncherScan"`
	OutWhenFoundIncorrectFox bool `json:"outWhenFoundIncorrectFox"`
}

func (rs *RestfulServer) SetGameSettings(c *gin.Context) {
	var req GameSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	err := rs.Game.Settings.Set(models.GameSettings{
		LauncherIsEnd:            req.LauncherIsEnd,
		StartAfterLauncherScan:   req.StartAfterLauncherScan,
		OutWhenFoundIncorrectFox: req.OutWhenFoundIncorrectFox,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (rs *RestfulServer) GameReset(c *gin.Context) {
	if err := rs.Game.Settings.GameReset(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func sseHeaders(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()
}

// ReadCard holds an SSE stream open until the launcher scans a card or
// the console gives up. One card, one event, stream done; the
// subscription dies with the request context, so an abandoned listener
// never leaks.
func (rs *RestfulServer) ReadCard(c *gin.Context) {
	ctx := c.Request.Context()
	msgs, err := rs.Bus.Subscribe(ctx, bus.TopicCardRead)
	if err != nil {
		respondError(c, err)
		return
	}

	sseHeaders(c)

	select {
	case <-ctx.Done():
	case msg, ok := <-msgs:
		if !ok {
			return
		}
		msg.Ack()
		fmt.Fprintf(c.Writer, "data: %s\n\n", msg.Payload)
		c.Writer.Flush()
	}
}

// StreamLogs pushes every new log entry to the console; the polling
// GET /api/logs stays available for consoles that prefer it.
func (rs *RestfulServer) StreamLogs(c *gin.Context) {
	ctx := c.Request.Context()
	msgs, err := rs.Bus.Subscribe(ctx, bus.TopicLogEntries)
	if err != nil {
		respondError(c, err)
		return
	}

	sseHeaders(c)

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, ok := <-msgs:
			if !ok {
				return false
			}
			msg.Ack()
			fmt.Fprintf(w, "data: %s\n\n", msg.Payload)
			return true
		}
	})
}
