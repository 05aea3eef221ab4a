package conversion

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type EventKind string

const (
	EventConversionExecuted EventKind = "ConversionExecuted"
	EventWindowUpdated      EventKind = "WindowUpdated"
	EventTokensDrained      EventKind = "TokensDrained"
	EventPaused             EventKind = "Paused"
	EventUnpaused           EventKind = "Unpaused"
)

// Event is a single entry of the append-only observability log
type Event struct {
	ID        string
	Kind      EventKind
	Account   common.Address
	Amount    *big.Int  // nil for window/pause events
	Window    *Window   // nil except for WindowUpdated
	CreatedAt time.Time
}
