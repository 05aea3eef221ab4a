package httphandlers

import (
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/conversion"
	"golang.org/x/exp/slices"
)

func (h *HTTPHandler) GetState(ctx *gin.Context) {
	window := h.authority.Window()
	ctx.JSON(200, StateResponse{
		Token:       h.authority.Token().Hex(),
		Minter:      h.authority.Minter().Hex(),
		Custody:     h.authority.Custody().Hex(),
		WindowStart: window.Start.Format(time.RFC3339),
		WindowEnd:   window.End.Format(time.RFC3339),
		Paused:      h.authority.IsPaused(),
	})
}

func (h *HTTPHandler) GetCustodyBalance(ctx *gin.Context) {
	balance, err := h.authority.CustodyBalance(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, gin.H{"balance": balance.String()})
}

func (h *HTTPHandler) GetRoles(ctx *gin.Context) {
	account := ctx.Param("account")
	if !common.IsHexAddress(account) {
		ctx.JSON(400, gin.H{"error": "invalid account address"})
		return
	}
	addr := common.HexToAddress(account)

	ctx.JSON(200, RolesResponse{
		Account:  addr.Hex(),
		IsAdmin:  h.authority.IsAdmin(addr),
		IsPauser: h.authority.IsPauser(addr),
		IsMiner:  h.authority.IsMiner(addr),
	})
}

func (h *HTTPHandler) GetEvents(ctx *gin.Context) {
	limit := 100
	if q := ctx.Query("limit"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed <= 0 {
			ctx.JSON(400, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	events, err := h.journal.Recent(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	data := make([]EventItem, 0, len(events))
	for _, event := range events {
		data = append(data, mapEvent(event))
	}
	slices.SortStableFunc(data, func(a, b EventItem) bool {
		return a.CreatedAt > b.CreatedAt
	})

	ctx.JSON(200, data)
}

func mapEvent(event conversion.Event) EventItem {
	item := EventItem{
		ID:        event.ID,
		Kind:      string(event.Kind),
		Account:   event.Account.Hex(),
		CreatedAt: event.CreatedAt.Format(time.RFC3339),
	}
	if event.Amount != nil {
		item.Amount = event.Amount.String()
	}
	if event.Window != nil {
		item.WindowStart = event.Window.Start.Format(time.RFC3339)
		item.WindowEnd = event.Window.End.Format(time.RFC3339)
	}
	return item
}
