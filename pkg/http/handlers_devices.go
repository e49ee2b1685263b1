package http

import (
	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"

	"foxhunt.xyz/fox-referee-service/pkg/game"
	"foxhunt.xyz/fox-referee-service/pkg/protocol"
)

type DeviceConfigRequest struct {
	FoxNumber  int  `json:"foxNumber"`
	Beep       bool `json:"beep"`
	Nfc        int  `json:"nfc"`
	RfEnable   bool `json:"rfEnable"`
	RfFreq     int  `json:"rfFreq"`
	RfDuration int  `json:"rfDuration"`
}

var deviceConfigRequestSchema = z.Struct(z.Shape{
	"FoxNumber":  z.Int().GTE(0),
	"RfFreq":     z.Int().GTE(0),
	"RfDuration": z.Int().GTE(0),
	"Nfc":        z.Int().GTE(0),
})

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	respondOK(c, gin.H{"devices": rs.Game.Devices.List()})
}

func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	shortSN := c.Param("shortSN")

	var req DeviceConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := deviceConfigRequestSchema.Validate(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	_, err := rs.Game.Devices.ApplyConfig(shortSN, game.DeviceConfigInput{
		FoxNumber:  req.FoxNumber,
		Beep:       req.Beep,
		Nfc:        protocol.NfcStatus(req.Nfc),
		RfEnable:   req.RfEnable,
		RfFreq:     req.RfFreq,
		RfDuration: protocol.RfDuration(req.RfDuration),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
