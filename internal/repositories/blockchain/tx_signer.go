package blockchain

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
)

// TxSigner builds transact opts for the custody wallet. Both gateways sign
// with the same account, so the nonce cache must be shared between them.
type TxSigner struct {
	// config
	legacyTx bool // use legacy transaction fee, for local node testing

	// state
	nonce uint64
	mutex sync.Mutex

	// deps
	client EthereumClient
	wallet *Wallet
}

func NewTxSigner(client EthereumClient, wallet *Wallet, legacyTx bool) *TxSigner {
	return &TxSigner{
		legacyTx: legacyTx,
		client:   client,
		wallet:   wallet,
	}
}

func (s *TxSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	privateKey, err := crypto.HexToECDSA(s.wallet.PrivateKey())
	if err != nil {
		return nil, err
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	transactOpts, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
	if err != nil {
		return nil, err
	}

	if s.legacyTx {
		gasPrice, err := s.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, err
		}
		transactOpts.GasPrice = gasPrice
	}

	nonce, err := s.getNonce(ctx)
	if err != nil {
		return nil, err
	}

	transactOpts.Value = big.NewInt(0)
	transactOpts.Nonce = nonce
	transactOpts.Context = ctx

	return transactOpts, nil
}

func (s *TxSigner) getNonce(ctx context.Context) (*big.Int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	nonce := &big.Int{}
	blockchainNonce, err := s.client.PendingNonceAt(ctx, s.wallet.Address())
	if err != nil {
		return nonce, err
	}

	if s.nonce > blockchainNonce {
		nonce.SetUint64(s.nonce)
	} else {
		nonce.SetUint64(blockchainNonce)
	}

	s.nonce = nonce.Uint64() + 1

	return nonce, nil
}
