package http

import (
	"net/http"
	"strconv"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"

	"foxhunt.xyz/fox-referee-service/pkg/game"
	"foxhunt.xyz/fox-referee-service/pkg/models"
)

type PlayerRequest struct {
	Group        string `json:"group"`
	Name         string `json:"name"`
	CardNumber   *int   `json:"cardNumber"`
	FindSequence []int  `json:"findSequence"`
}

var playerRequestSchema = z.Struct(z.Shape{
	"Group": z.String(),
	"Name":  z.String().Min(1).Required(),
	// CardNumber and FindSequence bounds are checked by the core
})

func (rs *RestfulServer) playerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid player id"})
		return 0, false
	}
	return id, true
}

func (rs *RestfulServer) GetPlayers(c *gin.Context) {
	respondOK(c, gin.H{"players": rs.Game.Players.List()})
}

// playerWithRecords exposes the per-player audit trail the detail
// dialog renders; the list endpoint leaves records out.
type playerWithRecords struct {
	models.Player
	Records []models.Record `json:"records"`
}

func (rs *RestfulServer) GetPlayer(c *gin.Context) {
	id, ok := rs.playerID(c)
	if !ok {
		return
	}
	p, err := rs.Game.Players.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"player": playerWithRecords{Player: p, Records: p.Records}})
}

func (rs *RestfulServer) AddPlayer(c *gin.Context) {
	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := playerRequestSchema.Validate(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	p, err := rs.Game.Players.Create(game.PlayerInput{
		Group:        req.Group,
		Name:         req.Name,
		CardNumber:   req.CardNumber,
		FindSequence: req.FindSequence,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"player": p})
}

func (rs *RestfulServer) SetPlayer(c *gin.Context) {
	id, ok := rs.playerID(c)
	if !ok {
		return
	}

	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := playerRequestSchema.Validate(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	p, err := rs.Game.Players.Update(id, game.PlayerInput{
		Group:        req.Group,
		Name:         req.Name,
		CardNumber:   req.CardNumber,
		FindSequence: req.FindSequence,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"player": p})
}

func (rs *RestfulServer) DeletePlayer(c *gin.Context) {
	id, ok := rs.playerID(c)
	if !ok {
		return
	}
	if err := rs.Game.Players.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (rs *RestfulServer) ClearPlayers(c *gin.Context) {
	if err := rs.Game.Players.ClearAll(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (rs *RestfulServer) PlayerPrepareToGo(c *gin.Context) {
	rs.playerTransition(c, rs.Game.Players.PrepareToGo)
}

func (rs *RestfulServer) PlayerGo(c *gin.Context) {
	rs.playerTransition(c, rs.Game.Players.Go)
}

func (rs *RestfulServer) PlayerFinish(c *gin.Context) {
	rs.playerTransition(c, rs.Game.Players.Finish)
}

func (rs *RestfulServer) PlayerOut(c *gin.Context) {
	rs.playerTransition(c, rs.Game.Players.Out)
}

func (rs *RestfulServer) PlayerReset(c *gin.Context) {
	rs.playerTransition(c, rs.Game.Players.Reset)
}

func (rs *RestfulServer) playerTransition(c *gin.Context, op func(id int) error) {
	id, ok := rs.playerID(c)
	if !ok {
		return
	}
	if err := op(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

type PenaltyRequest struct {
	Time int `json:"time"`
}

func (rs *RestfulServer) PlayerPenalty(c *gin.Context) {
	id, ok := rs.playerID(c)
	if !ok {
		return
	}
	var req PenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := rs.Game.Players.Penalty(id, req.Time); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (rs *RestfulServer) PrepareAll(c *gin.Context) {
	respondOK(c, gin.H{"result": rs.Game.Players.PrepareAll()})
}

func (rs *RestfulServer) GoAllAfterPrepare(c *gin.Context) {
	respondOK(c, gin.H{"result": rs.Game.Players.GoAllAfterPrepare()})
}

func (rs *RestfulServer) OutAllRunning(c *gin.Context) {
	respondOK(c, gin.H{"result": rs.Game.Players.OutAllRunning()})
}

func (rs *RestfulServer) OutAllNotPrepared(c *gin.Context) {
	respondOK(c, gin.H{"result": rs.Game.Players.OutAllNotPrepared()})
}

func (rs *RestfulServer) ResetAllForPrepare(c *gin.Context) {
	respondOK(c, gin.H{"result": rs.Game.Players.ResetAllForPrepare()})
}

func (rs *RestfulServer) GetRanking(c *gin.Context) {
	respondOK(c, gin.H{"ranks": rs.Game.Players.Ranking()})
}
