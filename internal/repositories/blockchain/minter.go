package blockchain

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/conversion"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/interfaces"
)

const minterABI = `[
	{"inputs":[{"name":"account","type":"address"},{"name":"amount","type":"uint256"}],"name":"creditAccount","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

// MinterGateway adapts the destination-asset minter contract to the MintSink
// interface. The credit call carries no observable result beyond tx success.
type MinterGateway struct {
	// deps
	contract *bind.BoundContract
	client   EthereumClient
	signer   *TxSigner
	log      interfaces.ILogger
}

func NewMinterGateway(minterAddr common.Address, client EthereumClient, signer *TxSigner, log interfaces.ILogger) *MinterGateway {
	parsed, err := abi.JSON(strings.NewReader(minterABI))
	if err != nil {
		panic("invalid minter ABI: " + err.Error())
	}

	return &MinterGateway{
		contract: bind.NewBoundContract(minterAddr, parsed, client, client, client),
		client:   client,
		signer:   signer,
		log:      log,
	}
}

func (g *MinterGateway) CreditAccount(ctx context.Context, account common.Address, amount *big.Int) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	opts, err := g.signer.TransactOpts(ctx)
	if err != nil {
		return err
	}

	tx, err := g.contract.Transact(opts, "creditAccount", account, amount)
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

var _ conversion.MintSink = new(MinterGateway)
