package httphandlers

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) Drain(ctx *gin.Context) {
	var req DrainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	drained, err := h.authority.Drain(ctx.Request.Context(), common.HexToAddress(req.Caller))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"status": "ok", "drained": drained.String()})
}

func (h *HTTPHandler) SetWindow(ctx *gin.Context) {
	var req WindowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		ctx.JSON(400, gin.H{"error": "start: " + err.Error()})
		return
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		ctx.JSON(400, gin.H{"error": "end: " + err.Error()})
		return
	}

	err = h.authority.SetWindow(ctx.Request.Context(), common.HexToAddress(req.Caller), start, end)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"status": "ok"})
}

func (h *HTTPHandler) Pause(ctx *gin.Context) {
	var req PauseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	err := h.authority.Pause(ctx.Request.Context(), common.HexToAddress(req.Caller))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"status": "ok"})
}

func (h *HTTPHandler) Unpause(ctx *gin.Context) {
	var req PauseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	err := h.authority.Unpause(ctx.Request.Context(), common.HexToAddress(req.Caller))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"status": "ok"})
}
