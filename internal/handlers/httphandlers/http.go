package httphandlers

import (
	"errors"
	"net/url"

	"github.com/gin-gonic/gin"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/config"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/conversion"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/interfaces"
)

type HTTPHandler struct {
	authority *conversion.Authority
	journal   *conversion.Journal
	publicUrl *url.URL
	log       interfaces.ILogger
}

func NewHTTPHandler(authority *conversion.Authority, journal *conversion.Journal, publicUrl *url.URL, log interfaces.ILogger) *gin.Engine {
	handl := &HTTPHandler{
		authority: authority,
		journal:   journal,
		publicUrl: publicUrl,
		log:       log,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthcheck", handl.HealthCheck)
	r.GET("/state", handl.GetState)
	r.GET("/balance", handl.GetCustodyBalance)
	r.GET("/events", handl.GetEvents)
	r.GET("/roles/:account", handl.GetRoles)

	r.POST("/convert", handl.Convert)
	r.POST("/mint", handl.DirectMint)
	r.POST("/drain", handl.Drain)
	r.POST("/window", handl.SetWindow)
	r.POST("/pause", handl.Pause)
	r.POST("/unpause", handl.Unpause)

	err := r.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	return r
}

func (h *HTTPHandler) HealthCheck(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":  "healthy",
		"version": config.BuildVersion,
	})
}

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, conversion.ErrUnauthorized):
		return 403
	case errors.Is(err, conversion.ErrInvalidAmount),
		errors.Is(err, conversion.ErrInvalidWindow),
		errors.Is(err, conversion.ErrInvalidAddress),
		errors.Is(err, conversion.ErrInsufficientBalance),
		errors.Is(err, conversion.ErrInsufficientAllowance):
		return 400
	case errors.Is(err, conversion.ErrPaused),
		errors.Is(err, conversion.ErrAlreadyPaused),
		errors.Is(err, conversion.ErrNotPaused),
		errors.Is(err, conversion.ErrWindowNotStarted),
		errors.Is(err, conversion.ErrWindowEnded),
		errors.Is(err, conversion.ErrNothingToDrain),
		errors.Is(err, conversion.ErrNotInitialized),
		errors.Is(err, conversion.ErrAlreadyInitialized):
		return 409
	case errors.Is(err, conversion.ErrTransferMismatch):
		return 502
	default:
		return 500
	}
}
