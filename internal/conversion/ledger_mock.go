package conversion

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var ErrMockAllowanceExceeded = errors.New("transfer amount exceeds allowance")

// AssetLedgerMock is an in-memory ERC20 with the knobs the authority tests
// need: injectable call errors and a configurable transfer shortfall to
// simulate fee-on-transfer assets.
type AssetLedgerMock struct {
	Balances   map[common.Address]*big.Int
	Allowances map[common.Address]map[common.Address]*big.Int

	// Custody is the account plain Transfer debits
	Custody common.Address

	// TransferShortfall is withheld from the recipient on every transfer
	TransferShortfall *big.Int

	BalanceOfErr    error
	AllowanceErr    error
	TransferFromErr error
	TransferErr     error

	TransferFromCalls int
	TransferCalls     int
}

func NewAssetLedgerMock() *AssetLedgerMock {
	return &AssetLedgerMock{
		Balances:   make(map[common.Address]*big.Int),
		Allowances: make(map[common.Address]map[common.Address]*big.Int),
	}
}

func (m *AssetLedgerMock) SetBalance(account common.Address, amount int64) {
	m.Balances[account] = big.NewInt(amount)
}

func (m *AssetLedgerMock) Approve(owner, spender common.Address, amount int64) {
	if m.Allowances[owner] == nil {
		m.Allowances[owner] = make(map[common.Address]*big.Int)
	}
	m.Allowances[owner][spender] = big.NewInt(amount)
}

func (m *AssetLedgerMock) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	if m.BalanceOfErr != nil {
		return nil, m.BalanceOfErr
	}
	return new(big.Int).Set(m.balance(account)), nil
}

func (m *AssetLedgerMock) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	if m.AllowanceErr != nil {
		return nil, m.AllowanceErr
	}
	if m.Allowances[owner] == nil || m.Allowances[owner][spender] == nil {
		return big.NewInt(0), nil
	}
	return new(big.Int).Set(m.Allowances[owner][spender]), nil
}

func (m *AssetLedgerMock) TransferFrom(ctx context.Context, owner, recipient common.Address, amount *big.Int) error {
	m.TransferFromCalls++
	if m.TransferFromErr != nil {
		return m.TransferFromErr
	}
	allowance := m.Allowances[owner][recipient]
	if allowance == nil || allowance.Cmp(amount) < 0 {
		return ErrMockAllowanceExceeded
	}
	allowance.Sub(allowance, amount)
	m.move(owner, recipient, amount)
	return nil
}

func (m *AssetLedgerMock) Transfer(ctx context.Context, recipient common.Address, amount *big.Int) error {
	m.TransferCalls++
	if m.TransferErr != nil {
		return m.TransferErr
	}
	m.move(m.Custody, recipient, amount)
	return nil
}

var _ AssetLedger = new(AssetLedgerMock)

func (m *AssetLedgerMock) balance(account common.Address) *big.Int {
	if m.Balances[account] == nil {
		m.Balances[account] = big.NewInt(0)
	}
	return m.Balances[account]
}

func (m *AssetLedgerMock) move(from, to common.Address, amount *big.Int) {
	received := new(big.Int).Set(amount)
	if m.TransferShortfall != nil {
		received.Sub(received, m.TransferShortfall)
	}
	m.balance(from).Sub(m.balance(from), amount)
	m.balance(to).Add(m.balance(to), received)
}
