package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/ropchain/internal/config"
	"github.com/ib-77/ropchain/pkg/contact"
	"github.com/ib-77/ropchain/pkg/rop/chain"
	"github.com/ib-77/ropchain/pkg/rop/core"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errRejected makes the process exit non-zero when a contact fails.
var errRejected = errors.New("validation failed")

type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "chainrun",
		Short: "Validate contacts through a chain of responsibility",
		Long: `chainrun passes each contact through an ordered chain of links
(head, name, phone). The first link that rejects the contact names the failure;
a contact that passes every link is accepted.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.checkCmd(), a.batchCmd(), a.linksCmd())
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return core.WithWorkerOptions(core.WithLogger(ctx, a.logger), a.cfg.Workers)
}

func (a *app) buildChain() (chain.Link[contact.Contact], error) {
	head, err := contact.FromSpecs(a.cfg.Links)
	if err != nil {
		return nil, fmt.Errorf("failed to build chain: %w", err)
	}
	return head, nil
}
