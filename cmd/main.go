package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/config"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/conversion"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/handlers/httphandlers"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/lib"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/repositories/blockchain"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/repositories/eventstore"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	var cfg config.Config
	err := config.LoadConfig(&cfg, &os.Args)
	if err != nil {
		panic(err)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	log, err := lib.NewLogger(cfg.Log.Level, cfg.Log.Color, cfg.Log.IsProd, cfg.Log.JSON, cfg.Log.FilePath)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-shutdownChan
		log.Warnf("Received signal: %s", s)
		cancel()

		s = <-shutdownChan
		log.Warnf("Received signal: %s. Forcing exit...", s)
		os.Exit(1)
	}()

	windowStart, err := time.Parse(time.RFC3339, cfg.Window.Start)
	if err != nil {
		panic(err)
	}
	windowEnd, err := time.Parse(time.RFC3339, cfg.Window.End)
	if err != nil {
		panic(err)
	}

	var wallet *blockchain.Wallet
	if cfg.Wallet.PrivateKey != "" {
		wallet, err = blockchain.NewWalletFromPrivateKey(cfg.Wallet.PrivateKey)
	} else {
		wallet, err = blockchain.NewWalletFromMnemonic(cfg.Wallet.Mnemonic, cfg.Wallet.AccountIndex)
	}
	if err != nil {
		panic(err)
	}
	log.Infof("custody wallet address: %s", wallet.Address().Hex())

	ethClient, err := blockchain.DialContext(ctx, cfg.Blockchain.EthNodeAddress)
	if err != nil {
		panic(err)
	}
	defer ethClient.Close()

	signer := blockchain.NewTxSigner(ethClient, wallet, cfg.Blockchain.EthLegacyTx)
	ledger := blockchain.NewERC20Ledger(common.HexToAddress(cfg.Contracts.TokenAddress), ethClient, signer, log.Named("ERC20"))
	sink := blockchain.NewMinterGateway(common.HexToAddress(cfg.Contracts.MinterAddress), ethClient, signer, log.Named("MINTER"))

	store, err := eventstore.NewSQLiteStore(cfg.Journal.DBPath)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = store.Close()
	}()

	journal := conversion.NewJournal(store, cfg.Journal.RecentCapacity, log.Named("JOURNAL"))
	authority := conversion.NewAuthority(ledger, sink, wallet.Address(), journal, nil, log.Named("AUTHORITY"))

	err = authority.Initialize(conversion.InitParams{
		Token:       common.HexToAddress(cfg.Contracts.TokenAddress),
		Minter:      common.HexToAddress(cfg.Contracts.MinterAddress),
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Admin:       common.HexToAddress(cfg.Roles.AdminAddress),
		Pauser:      common.HexToAddress(cfg.Roles.PauserAddress),
		Miner:       common.HexToAddress(cfg.Roles.MinerAddress),
	})
	if err != nil {
		panic(err)
	}

	publicUrl, _ := url.Parse(cfg.Web.PublicUrl)
	handler := httphandlers.NewHTTPHandler(authority, journal, publicUrl, log.Named("HTTP"))

	server := &http.Server{
		Addr:    cfg.Web.Address,
		Handler: handler,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Infof("http server is listening: %s", cfg.Web.Address)
		return server.ListenAndServe()
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	err = group.Wait()
	log.Infof("App exited due to %s", err)
}
