package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"life-cycles/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		logrus.WithError(err).Fatal("cycles failed")
	}
}

// cli holds state shared by the root command and its subcommands.
type cli struct {
	cfg *app.Config
	app *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: app.NewConfig()}

	root := &cobra.Command{
		Use:   "cycles",
		Short: "Count cycle lengths over every configuration of a toroidal Life board",
		Long: `cycles enumerates every initial configuration of a small toroidal
Game of Life board, follows each one until its state repeats, and prints how
many configurations end in a cycle of each length.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Census(cmd.Context())
		},
	}
	c.cfg.Bind(root.PersistentFlags())
	root.AddCommand(c.probeCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := c.cfg.Resolve(viper.New(), cmd.Flags()); err != nil {
		return err
	}
	logger, err := app.NewLogger(c.cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	c.app = app.New(c.cfg, logger, os.Stdout)
	return nil
}

func (c *cli) probeCmd() *cobra.Command {
	var (
		conf   uint64
		random bool
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Follow one configuration and print its trajectory until it repeats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if random {
				if !cmd.Flags().Changed("seed") {
					seed = time.Now().UnixNano()
				}
				conf = c.app.RandomConfiguration(seed)
			}
			_, err := c.app.Probe(cmd.Context(), conf)
			return err
		},
	}
	cmd.Flags().Uint64Var(&conf, "conf", 0, "packed configuration, bit i = cell i in row-major order")
	cmd.Flags().BoolVar(&random, "random", false, "probe a random configuration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for --random (default: current time)")
	cmd.MarkFlagsMutuallyExclusive("conf", "random")
	return cmd
}
