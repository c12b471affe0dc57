package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/slideover/internal/config"
	"github.com/marcus/slideover/internal/demo"
	"github.com/marcus/slideover/internal/output"
	"github.com/marcus/slideover/pkg/ui/overlay"
)

// Smallest terminal the demo will start in.
const (
	minDemoWidth  = 30
	minDemoHeight = 10
)

var errNoTerminal = errors.New("demo needs an interactive terminal")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive overlay demo",
	Long: `Run a full-screen demo of the sliding overlay.

Flags override values from .slideover/config.json.`,
	Example: `  slideover demo --direction right
  slideover demo --close-outside=false --background 230 --log-file /tmp/slideover.log`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
			output.Error("%v", errNoTerminal)
			return errNoTerminal
		}
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < minDemoWidth || h < minDemoHeight) {
			err := fmt.Errorf("terminal is %dx%d, demo needs at least %dx%d", w, h, minDemoWidth, minDemoHeight)
			output.Error("%v", err)
			return err
		}

		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		opts, err := demoOverlayOptions(cfg, cmd.Flags())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		logger, closeLog, err := openLogger(demoLogFile)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer closeLog()

		m, err := demo.New(demo.Options{
			Overlay:      opts,
			GlamourStyle: demoGlamourStyle,
			Logger:       logger,
		})
		if err != nil {
			output.Error("%v", err)
			return err
		}

		logger.Info("demo starting", "overlay", m.Overlay().ID(), "direction", m.Overlay().Direction(), "close_outside", m.Overlay().CloseOutside())
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			output.Error("demo: %v", err)
			return err
		}
		return nil
	},
}

var (
	demoDirection    directionValue
	demoCloseOutside bool
	demoBackground   string
	demoLogFile      string
	demoGlamourStyle string
)

// demoOverlayOptions applies changed flags over the file config.
func demoOverlayOptions(cfg *config.Config, flags *pflag.FlagSet) ([]overlay.Option, error) {
	merged := *cfg
	if flags.Changed("direction") {
		merged.Direction = demoDirection.String()
	}
	if flags.Changed("close-outside") {
		merged.SetCloseOutside(demoCloseOutside)
	}
	if flags.Changed("background") {
		merged.Background = demoBackground
	}
	return merged.OverlayOptions()
}

// openLogger returns a debug logger writing to path, or a discarding
// logger when path is empty. stdout belongs to the TUI.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func addDemoFlags(fs *pflag.FlagSet) {
	fs.Var(&demoDirection, "direction", "slide direction: up, top, down, left or right")
	fs.BoolVar(&demoCloseOutside, "close-outside", true, "close when the backdrop is clicked")
	fs.StringVar(&demoBackground, "background", "", "content background color (ANSI number or #hex)")
	fs.StringVar(&demoLogFile, "log-file", "", "write debug logs to this file")
	fs.StringVar(&demoGlamourStyle, "glamour-style", "light", "markdown style for the overlay body")
}

func init() {
	addDemoFlags(demoCmd.Flags())
	rootCmd.AddCommand(demoCmd)
}
