package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	dbm "github.com/tendermint/tm-db"

	"github.com/plexfi/plexlock/codec"
	"github.com/plexfi/plexlock/store"
	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/bank"
	"github.com/plexfi/plexlock/x/plexlock"
	"github.com/plexfi/plexlock/x/plexlock/client/rest"
	"github.com/plexfi/plexlock/x/plexlock/keeper"
)

func startCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the engine with its query API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart()
		},
	}
	cmd.Flags().String(flagListen, "127.0.0.1:1317", "query API listen address")
	cmd.Flags().String(flagDB, string(dbm.GoLevelDBBackend), "database backend")
	return cmd
}

func runStart() error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	home := viper.GetString(flagHome)
	if err := os.MkdirAll(home+"/data", 0755); err != nil {
		return err
	}

	db := dbm.NewDB("plexlock", dbm.DBBackendType(viper.GetString(flagDB)), home+"/data")
	defer db.Close()

	cdc := codec.New()
	plexlock.RegisterCodec(cdc)

	ms := store.NewMultiStore(db)
	bankKey := sdk.NewKVStoreKey(bank.StoreKey)
	plexKey := sdk.NewKVStoreKey(plexlock.StoreKey)

	bankKeeper := bank.NewKeeper(cdc, bankKey)
	k := keeper.NewKeeper(cdc, plexKey, bankKeeper, keeper.Collaborators{})

	newCtx := func() sdk.Context {
		return sdk.NewContext(ms, time.Now().UTC(), logger)
	}

	initCtx := newCtx()
	if !initCtx.KVStore(plexKey).Has(plexlock.ParamsKey) {
		plexlock.InitGenesis(initCtx, k, plexlock.DefaultGenesisState())
		logger.Info("initialized genesis state with default params")
	}

	router := mux.NewRouter()
	rest.RegisterRoutes(router, keeper.NewQuerier(k), newCtx)

	listen := viper.GetString(flagListen)
	srv := &http.Server{
		Addr:         listen,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("listen", listen).Info("query API listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.WithField("signal", sig.String()).Info("shutting down")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger() (logrus.FieldLogger, error) {
	logger := logrus.New()
	lvl, err := logrus.ParseLevel(viper.GetString(flagLogLvl))
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)
	if viper.GetBool(flagLogJSON) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
