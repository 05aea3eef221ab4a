package conversion

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// MintSinkMock records credit instructions per account
type MintSinkMock struct {
	Credits     map[common.Address]*big.Int
	CreditErr   error
	CreditCalls int
}

func NewMintSinkMock() *MintSinkMock {
	return &MintSinkMock{
		Credits: make(map[common.Address]*big.Int),
	}
}

func (m *MintSinkMock) CreditAccount(ctx context.Context, account common.Address, amount *big.Int) error {
	m.CreditCalls++
	if m.CreditErr != nil {
		return m.CreditErr
	}
	if m.Credits[account] == nil {
		m.Credits[account] = big.NewInt(0)
	}
	m.Credits[account].Add(m.Credits[account], amount)
	return nil
}

func (m *MintSinkMock) CreditedTo(account common.Address) *big.Int {
	if m.Credits[account] == nil {
		return big.NewInt(0)
	}
	return m.Credits[account]
}

var _ MintSink = new(MintSinkMock)
