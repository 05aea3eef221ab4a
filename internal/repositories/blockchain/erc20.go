package blockchain

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/conversion"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/interfaces"
)

const txTimeout = 1 * time.Minute

var ErrTxReverted = errors.New("transaction reverted")

const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"sender","type":"address"},{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"}],"name":"transferFrom","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"}
]`

// ERC20Ledger adapts the source-asset token contract to the AssetLedger
// interface. Writes are signed by the custody wallet and waited to be mined,
// a reverted receipt surfaces as ErrTxReverted.
type ERC20Ledger struct {
	// deps
	contract *bind.BoundContract
	client   EthereumClient
	signer   *TxSigner
	log      interfaces.ILogger
}

func NewERC20Ledger(tokenAddr common.Address, client EthereumClient, signer *TxSigner, log interfaces.ILogger) *ERC20Ledger {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		panic("invalid erc20 ABI: " + err.Error())
	}

	return &ERC20Ledger{
		contract: bind.NewBoundContract(tokenAddr, parsed, client, client, client),
		client:   client,
		signer:   signer,
		log:      log,
	}
}

func (g *ERC20Ledger) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	var out []interface{}
	err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", account)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (g *ERC20Ledger) Allowance(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error) {
	var out []interface{}
	err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (g *ERC20Ledger) TransferFrom(ctx context.Context, owner common.Address, recipient common.Address, amount *big.Int) error {
	return g.transact(ctx, "transferFrom", owner, recipient, amount)
}

func (g *ERC20Ledger) Transfer(ctx context.Context, recipient common.Address, amount *big.Int) error {
	return g.transact(ctx, "transfer", recipient, amount)
}

func (g *ERC20Ledger) transact(ctx context.Context, method string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	opts, err := g.signer.TransactOpts(ctx)
	if err != nil {
		return err
	}

	tx, err := g.contract.Transact(opts, method, args...)
	if err != nil {
		g.log.Error(err)
		return err
	}

	receipt, err := bind.WaitMined(ctx, g.client, tx)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return ErrTxReverted
	}
	return nil
}

var _ conversion.AssetLedger = new(ERC20Ledger)
