package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/genie/internal/app"
	"github.com/bobmcallan/genie/internal/common"
	"github.com/bobmcallan/genie/internal/models"
)

type rootOptions struct {
	configPaths  []string
	logLevel     string
	risk         string
	noTypewriter bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "genie",
		Short:         "DeFi Genie: explore illustrative staking, farming and insurance projections",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenie(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVar(&opts.configPaths, "config", nil, "config file (repeatable, later files override earlier)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.risk, "risk", "", "preselect risk appetite: low, medium or high")
	cmd.Flags().BoolVar(&opts.noTypewriter, "no-typewriter", false, "print text without the typewriter effect")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), common.GetFullVersion())
		},
	}
}

func runGenie(ctx context.Context, opts *rootOptions, in io.Reader, out io.Writer) error {
	var risk models.RiskTier
	if opts.risk != "" {
		r, err := models.ParseRiskTier(opts.risk)
		if err != nil {
			return err
		}
		risk = r
	}

	a, err := app.NewApp(app.Options{
		ConfigPaths: opts.configPaths,
		LogLevel:    opts.logLevel,
	}, in, out)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	if opts.noTypewriter {
		a.DisableTypewriter()
	}
	if risk != "" {
		a.SetRisk(risk)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Ctrl+C while blocked on input: say goodbye and leave.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
			a.Interrupted()
			a.Close()
			os.Exit(0)
		case <-ctx.Done():
		}
	}()

	return a.Run(ctx)
}
