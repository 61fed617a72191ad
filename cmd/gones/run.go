package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"nesgo/internal/app"
	"nesgo/internal/cartridge"
	"nesgo/internal/system"
	"nesgo/internal/video/ebitenfrontend"
	"nesgo/internal/video/tuifrontend"
)

func newRunCmd() *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Load a ROM and run it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := cartridge.Load(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				if romErr, ok := err.(*cartridge.RomError); ok {
					os.Exit(romErr.ExitCode())
				}
				os.Exit(1)
			}

			cfg, err := app.LoadFromFile(configFile())
			if err != nil {
				return err
			}
			if tui {
				cfg.Backend = "tui"
			}

			sys := system.New(cart)

			if cfg.Backend == "tui" {
				model := tuifrontend.New(sys, cfg)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			game := ebitenfrontend.New(sys, cfg)
			w, h := game.WindowSize()
			ebiten.SetWindowSize(w, h)
			ebiten.SetWindowTitle(fmt.Sprintf("gones - %s", args[0]))
			return ebiten.RunGame(game)
		},
	}
	cmd.Flags().BoolVar(&tui, "tui", false, "run the terminal frontend instead of the windowed one")
	return cmd
}

func configFile() string {
	if configPath != "" {
		return configPath
	}
	exe, err := os.Executable()
	if err != nil {
		return "gones.json"
	}
	return filepath.Join(filepath.Dir(exe), "gones.json")
}
