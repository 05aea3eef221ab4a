package conversion

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AssetLedger is the source-asset (ERC20) ledger the authority pulls funds from.
// TransferFrom spends the owner's allowance granted to the custody account.
type AssetLedger interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error)
	TransferFrom(ctx context.Context, owner common.Address, recipient common.Address, amount *big.Int) error
	Transfer(ctx context.Context, recipient common.Address, amount *big.Int) error
}

// MintSink credits the destination asset on another ledger. One-way call,
// no confirmation is observed by the authority.
type MintSink interface {
	CreditAccount(ctx context.Context, account common.Address, amount *big.Int) error
}

// EventStore persists journal entries for off-process observers.
// List returns up to limit events, newest first.
type EventStore interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context, limit int) ([]Event, error)
}
