package blockchain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthereumClient is the subset of ethclient the gateways depend on
type EthereumClient interface {
	bind.ContractBackend
	ChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type EthClient struct {
	// config
	url string

	// state
	*ethclient.Client
}

func DialContext(ctx context.Context, urlString string) (*EthClient, error) {
	client, err := ethclient.DialContext(ctx, urlString)
	if err != nil {
		return nil, err
	}
	return &EthClient{
		Client: client,
		url:    urlString,
	}, nil
}

func (c *EthClient) URL() string {
	return c.url
}
