// Command jeebie runs a cartridge image on one of the available front-ends.
// The default build runs an interactive terminal session; building with
// -tags sdl2 swaps in a windowed, audio-capable front-end instead.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-jeebie/jeebie"
)

func main() {
	app := cli.NewApp()
	app.Name = "jeebie"
	app.Usage = "jeebie <rom-path>"
	app.ArgsUsage = "<rom-path>"
	app.Description = "A handheld console emulator"
	app.Version = "1.0.0"
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("jeebie exited with an error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelp(c)
		return errors.New("expected exactly one argument: the ROM path")
	}

	emu, err := jeebie.NewWithFile(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	return runFrontend(emu)
}
