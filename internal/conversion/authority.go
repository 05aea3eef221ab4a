package conversion

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/interfaces"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/lib"
	"go.uber.org/atomic"
)

// Authority is the conversion state machine: it gates deposits of the source
// asset on window/pause/role state, pulls funds into the custody account and
// issues a credit instruction to the mint sink.
//
// Every mutating operation runs to completion under a single mutex, including
// the external ledger and sink calls. Concurrent callers observe either the
// full pre-state or the full post-state of a call, never an interleaving.
type Authority struct {
	// config
	custody common.Address
	now     func() time.Time

	// state
	mutex       sync.Mutex
	initialized bool
	token       common.Address
	minter      common.Address
	window      Window
	paused      *atomic.Bool
	roles       *AccessControl

	// deps
	ledger  AssetLedger
	sink    MintSink
	journal *Journal
	log     interfaces.ILogger
}

// InitParams are the construction-time parameters of the authority
type InitParams struct {
	Token       common.Address
	Minter      common.Address
	WindowStart time.Time
	WindowEnd   time.Time
	Admin       common.Address
	Pauser      common.Address
	Miner       common.Address
}

func NewAuthority(ledger AssetLedger, sink MintSink, custody common.Address, journal *Journal, now func() time.Time, log interfaces.ILogger) *Authority {
	if now == nil {
		now = time.Now
	}
	return &Authority{
		custody: custody,
		now:     now,
		paused:  atomic.NewBool(false),
		roles:   NewAccessControl(),
		ledger:  ledger,
		sink:    sink,
		journal: journal,
		log:     log,
	}
}

// Initialize stores the asset references and window and seeds the role sets.
// Runs exactly once; a second call fails with ErrAlreadyInitialized.
//
// The miner account is deliberately not validated: deployments that migrate
// no legacy balances omit it, leaving the miner role empty.
func (a *Authority) Initialize(p InitParams) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.initialized {
		return ErrAlreadyInitialized
	}
	if p.Token == (common.Address{}) {
		return lib.WrapError(ErrInvalidAddress, errTokenZero)
	}
	if p.Minter == (common.Address{}) {
		return lib.WrapError(ErrInvalidAddress, errMinterZero)
	}
	window := Window{Start: p.WindowStart, End: p.WindowEnd}
	if err := window.Validate(); err != nil {
		return err
	}
	if p.Admin == (common.Address{}) {
		return lib.WrapError(ErrInvalidAddress, errAdminZero)
	}
	if p.Pauser == (common.Address{}) {
		return lib.WrapError(ErrInvalidAddress, errPauserZero)
	}

	a.token = p.Token
	a.minter = p.Minter
	a.window = window
	a.roles.Grant(RoleAdmin, p.Admin)
	a.roles.Grant(RolePauser, p.Pauser)
	if p.Miner != (common.Address{}) {
		a.roles.Grant(RoleMiner, p.Miner)
	}
	a.initialized = true

	a.log.Infof("initialized: token %s minter %s window [%s, %s)",
		p.Token.Hex(), p.Minter.Hex(), window.Start, window.End)
	return nil
}

// Convert pulls amount units of the source asset from the sender into custody
// and credits the sender with the same amount on the mint sink.
//
// Guard order is fixed: pause, window start, window end, balance, allowance.
// The received amount is verified by custody balance delta to catch assets
// that silently short-transfer. On a delta mismatch or a failed sink call the
// pulled funds are transferred back to the sender and the whole call fails.
func (a *Authority) Convert(ctx context.Context, sender common.Address, amount *big.Int) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if !a.initialized {
		return ErrNotInitialized
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if a.paused.Load() {
		return ErrPaused
	}
	now := a.now()
	if now.Before(a.window.Start) {
		return ErrWindowNotStarted
	}
	if !now.Before(a.window.End) {
		return ErrWindowEnded
	}

	balance, err := a.ledger.BalanceOf(ctx, sender)
	if err != nil {
		return err
	}
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}

	allowance, err := a.ledger.Allowance(ctx, sender, a.custody)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return ErrInsufficientAllowance
	}

	custodyBefore, err := a.ledger.BalanceOf(ctx, a.custody)
	if err != nil {
		return err
	}

	err = a.ledger.TransferFrom(ctx, sender, a.custody, amount)
	if err != nil {
		return err
	}

	custodyAfter, err := a.ledger.BalanceOf(ctx, a.custody)
	if err != nil {
		return err
	}
	received := new(big.Int).Sub(custodyAfter, custodyBefore)
	if received.Cmp(amount) != 0 {
		err = lib.WrapError(ErrTransferMismatch, errReceived(received, amount))
		// whatever did arrive goes back, a short transfer must not strand funds
		if received.Sign() > 0 {
			if refundErr := a.ledger.Transfer(ctx, sender, received); refundErr != nil {
				a.log.Errorf("refund of %s to %s failed after transfer mismatch: %s", received, sender.Hex(), refundErr)
				return lib.WrapError(err, refundErr)
			}
		}
		return err
	}

	err = a.sink.CreditAccount(ctx, sender, amount)
	if err != nil {
		// funds are already in custody, give them back before failing
		if refundErr := a.ledger.Transfer(ctx, sender, amount); refundErr != nil {
			a.log.Errorf("refund of %s to %s failed after sink error: %s", amount, sender.Hex(), refundErr)
			return lib.WrapError(err, refundErr)
		}
		return err
	}

	a.recordEvent(ctx, Event{Kind: EventConversionExecuted, Account: sender, Amount: new(big.Int).Set(amount)})
	return nil
}

// DirectMint credits the destination asset without touching the source
// ledger. Miner role only. Used to migrate balances that have no on-chain
// representation in the source asset, so no window or pause check applies.
func (a *Authority) DirectMint(ctx context.Context, caller common.Address, to common.Address, amount *big.Int) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if !a.initialized {
		return ErrNotInitialized
	}
	if !a.roles.HasRole(RoleMiner, caller) {
		return ErrUnauthorized
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	err := a.sink.CreditAccount(ctx, to, amount)
	if err != nil {
		return err
	}

	a.log.Infof("direct mint of %s to %s by %s", amount, to.Hex(), caller.Hex())
	return nil
}

// Drain sweeps the entire custody balance of the source asset to the caller.
// Admin role only.
func (a *Authority) Drain(ctx context.Context, caller common.Address) (*big.Int, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if !a.initialized {
		return nil, ErrNotInitialized
	}
	if !a.roles.HasRole(RoleAdmin, caller) {
		return nil, ErrUnauthorized
	}

	balance, err := a.ledger.BalanceOf(ctx, a.custody)
	if err != nil {
		return nil, err
	}
	if balance.Sign() == 0 {
		return nil, ErrNothingToDrain
	}

	err = a.ledger.Transfer(ctx, caller, balance)
	if err != nil {
		return nil, err
	}

	a.recordEvent(ctx, Event{Kind: EventTokensDrained, Account: caller, Amount: balance})
	return balance, nil
}

// SetWindow atomically replaces both window bounds. Admin role only. The new
// window is unrestricted relative to the current time, an ended window may be
// reopened.
func (a *Authority) SetWindow(ctx context.Context, caller common.Address, start, end time.Time) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if !a.initialized {
		return ErrNotInitialized
	}
	if !a.roles.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	window := Window{Start: start, End: end}
	if err := window.Validate(); err != nil {
		return err
	}

	a.window = window
	a.recordEvent(ctx, Event{Kind: EventWindowUpdated, Account: caller, Window: &window})
	return nil
}

// Pause blocks the convert entry point. Pauser role only. Pausing an already
// paused authority is an explicit error, not a no-op.
func (a *Authority) Pause(ctx context.Context, caller common.Address) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if !a.initialized {
		return ErrNotInitialized
	}
	if !a.roles.HasRole(RolePauser, caller) {
		return ErrUnauthorized
	}
	if !a.paused.CAS(false, true) {
		return ErrAlreadyPaused
	}

	a.recordEvent(ctx, Event{Kind: EventPaused, Account: caller})
	return nil
}

func (a *Authority) Unpause(ctx context.Context, caller common.Address) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if !a.initialized {
		return ErrNotInitialized
	}
	if !a.roles.HasRole(RolePauser, caller) {
		return ErrUnauthorized
	}
	if !a.paused.CAS(true, false) {
		return ErrNotPaused
	}

	a.recordEvent(ctx, Event{Kind: EventUnpaused, Account: caller})
	return nil
}

func (a *Authority) IsAdmin(account common.Address) bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.roles.HasRole(RoleAdmin, account)
}

func (a *Authority) IsPauser(account common.Address) bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.roles.HasRole(RolePauser, account)
}

func (a *Authority) IsMiner(account common.Address) bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.roles.HasRole(RoleMiner, account)
}

func (a *Authority) IsPaused() bool {
	return a.paused.Load()
}

func (a *Authority) Window() Window {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.window
}

func (a *Authority) Token() common.Address {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.token
}

func (a *Authority) Minter() common.Address {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.minter
}

func (a *Authority) Custody() common.Address {
	return a.custody
}

// CustodyBalance is a live read from the source-asset ledger, the authority
// keeps no local balance accounting
func (a *Authority) CustodyBalance(ctx context.Context) (*big.Int, error) {
	return a.ledger.BalanceOf(ctx, a.custody)
}

// journal failures do not fail the operation that emitted the event, the
// ledger is already mutated at this point
func (a *Authority) recordEvent(ctx context.Context, event Event) {
	if err := a.journal.Record(ctx, event); err != nil {
		a.log.Warnf("failed to journal %s event: %s", event.Kind, err)
	}
}
