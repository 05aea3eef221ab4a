package httphandlers

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) Convert(ctx *gin.Context) {
	var req ConvertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		ctx.JSON(400, gin.H{"error": "amount is not a base-10 integer"})
		return
	}

	sender := common.HexToAddress(req.Sender)
	err := h.authority.Convert(ctx.Request.Context(), sender, amount)
	if err != nil {
		h.log.Warnf("convert of %s by %s rejected: %s", amount, sender.Hex(), err)
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"status": "ok"})
}

func (h *HTTPHandler) DirectMint(ctx *gin.Context) {
	var req MintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{"error": err.Error()})
		return
	}

	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		ctx.JSON(400, gin.H{"error": "amount is not a base-10 integer"})
		return
	}

	err := h.authority.DirectMint(ctx.Request.Context(), common.HexToAddress(req.Caller), common.HexToAddress(req.To), amount)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"status": "ok"})
}
