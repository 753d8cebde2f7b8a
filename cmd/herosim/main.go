package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/herorun/config"
	"github.com/milk9111/herorun/logger"
)

func newRootCmd() *cobra.Command {
	v := config.New()
	cmd := &cobra.Command{
		Use:          "herosim <script.yaml>",
		Short:        "Replay an input script through the hero controller without a window",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cmd.Flags())
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			script, err := LoadScript(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sum, err := Run(script, Options{
				Level:       cfg.Level,
				AutoRespawn: cfg.AutoRespawn,
				Strict:      cfg.Debug,
				DT:          cfg.DT(),
				ViewW:       float64(cfg.Width),
				ViewH:       float64(cfg.Height),
				Log:         logger.For("herosim"),
			}, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "frames %d  lives %d  jumps %d  flips %d  deaths %d  goals %d  final %s/%s\n",
				sum.Frames, sum.Lives, sum.Jumps, sum.Flips, sum.Deaths, sum.Goals, sum.Move, sum.Anim)
			return nil
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
