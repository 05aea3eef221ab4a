package conversion

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// configuration
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidWindow      = errors.New("window start must be before end")
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNotInitialized     = errors.New("not initialized")

	// authorization
	ErrUnauthorized = errors.New("caller lacks required role")

	// temporal
	ErrWindowNotStarted = errors.New("conversion window not started")
	ErrWindowEnded      = errors.New("conversion window ended")

	// funds
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrTransferMismatch      = errors.New("received amount does not match requested amount")

	// operational
	ErrPaused         = errors.New("conversions are paused")
	ErrAlreadyPaused  = errors.New("already paused")
	ErrNotPaused      = errors.New("not paused")
	ErrNothingToDrain = errors.New("custody balance is zero")
)

var (
	errTokenZero  = errors.New("token address is zero")
	errMinterZero = errors.New("minter address is zero")
	errAdminZero  = errors.New("admin address is zero")
	errPauserZero = errors.New("pauser address is zero")
)

func errReceived(received, requested *big.Int) error {
	return fmt.Errorf("received %s, requested %s", received, requested)
}

