package main

import (
	"log"
	"net/http"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	petclinic "github.com/spring-petclinic/petclinic-graphql"
	"github.com/spring-petclinic/petclinic-graphql/example/clinic"
)

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger, err := newLogger(opts.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	mux, err := newMux(opts, logger)
	if err != nil {
		logger.Fatal("failed to get GraphQL server", zap.Error(err))
	}

	logger.Info("server running", zap.String("addr", opts.Addr), zap.String("endpoint", opts.Endpoint))
	if err := http.ListenAndServe(opts.Addr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build(zap.Fields(zap.Int("pid", os.Getpid())))
}

func newMux(opts *Options, logger *zap.Logger) (*http.ServeMux, error) {
	h, err := clinic.GetGraphqlServer(logger)
	if err != nil {
		return nil, errors.Wrap(err, "building schema")
	}

	mux := http.NewServeMux()
	mux.Handle(opts.Endpoint, h)
	if opts.Playground {
		mux.Handle("/", petclinic.PlaygroundHandler("Petclinic Playground", opts.Endpoint))
	}
	return mux, nil
}
