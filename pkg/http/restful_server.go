package http

import (
	"errors"
	"net/http"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/eventlog"
	"foxhunt.xyz/fox-referee-service/pkg/game"
	"github.com/gin-gonic/gin"
)

// RestfulServer is the operator console API. It validates, delegates to
// the game core and wraps every reply in the {success} envelope the
// console expects.
type RestfulServer struct {
	Server *gin.Engine
	Game   *game.Game
	Bus    *bus.Bus
	Log    *eventlog.Logbook
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(corsMiddleware())

	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	{
		api.GET("/players", rs.GetPlayers)
		api.POST("/players", rs.AddPlayer)
		api.DELETE("/players", rs.ClearPlayers)

		api.POST("/players/prepare", rs.PrepareAll)
		api.DELETE("/players/prepare", rs.ResetAllForPrepare)
		api.POST("/players/go_after_prepare", rs.GoAllAfterPrepare)
		api.POST("/players/out_for_running", rs.OutAllRunning)
		api.POST("/players/out_for_not_prepare", rs.OutAllNotPrepared)

		api.GET("/players/:id", rs.GetPlayer)
		api.PUT("/players/:id", rs.SetPlayer)
		api.DELETE("/players/:id", rs.DeletePlayer)
		api.POST("/players/:id/prepare_to_go", rs.PlayerPrepareToGo)
		api.POST("/players/:id/go", rs.PlayerGo)
		api.POST("/players/:id/finish", rs.PlayerFinish)
		api.POST("/players/:id/out", rs.PlayerOut)
		api.POST("/players/:id/reset", rs.PlayerReset)
		api.POST("/players/:id/penalty", rs.PlayerPenalty)

		api.GET("/devices", rs.GetDevices)
		api.PUT("/devices/:shortSN", rs.UpdateDevice)

		api.GET("/logs", rs.GetLogs)
		api.GET("/logs/stream", rs.StreamLogs)
		api.GET("/ranking", rs.GetRanking)
		api.GET("/cards/read", rs.ReadCard)

		api.GET("/game/settings", rs.GetGameSettings)
		api.PUT("/game/settings", rs.SetGameSettings)
		api.DELETE("/game", rs.GameReset)
	}
}

// the console is served from a different origin than the API
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondOK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrPlayerNotFound), errors.Is(err, game.ErrDeviceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrInvalidTransition),
		errors.Is(err, game.ErrInvalidArgument),
		errors.Is(err, game.ErrDeviceConstraint):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func respondValidationError(c *gin.Context, err any) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "validation error", "details": err})
}
