package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"golang.org/x/term"

	"github.com/zarlcorp/zeid/internal/cli"
	"github.com/zarlcorp/zeid/internal/nationalid"
	"github.com/zarlcorp/zeid/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zeid"))

	_, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(os.Args[1])
		_ = app.Close()
		return
	}

	// bare invocation: interactive inspector on a terminal, usage
	// otherwise (e.g. piped)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		cli.Usage(os.Stderr)
		_ = app.Close()
		os.Exit(2)
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zeid %s\n", version)
	case "parse":
		cli.CmdParse(os.Args[2:])
	case "generate":
		cli.CmdGenerate(os.Args[2:])
	case "governorates":
		cli.CmdGovernorates(os.Args[2:])
	case "help", "-h", "--help":
		cli.Usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "zeid: unknown command %q\n", cmd)
		cli.Usage(os.Stderr)
		os.Exit(1)
	}
}

func runTUI() error {
	m := tui.New(version, nationalid.NewGenerator())
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
