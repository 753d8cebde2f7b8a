package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/herorun/config"
	"github.com/milk9111/herorun/logger"
)

func newRootCmd() *cobra.Command {
	v := config.New()
	cmd := &cobra.Command{
		Use:          "herorun",
		Short:        "Run the hero platformer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cmd.Flags())
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}

			game, err := NewGame(cfg)
			if err != nil {
				return err
			}
			defer game.Close()

			ebiten.SetWindowSize(cfg.Width, cfg.Height)
			ebiten.SetWindowTitle(cfg.Title)
			ebiten.SetTPS(cfg.TPS)
			return ebiten.RunGame(game)
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
