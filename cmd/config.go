package cmd

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/marcus/slideover/internal/config"
	"github.com/marcus/slideover/internal/output"
	"github.com/marcus/slideover/pkg/ui/overlay"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the overlay config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective overlay settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if err := printConfig(cmd.OutOrStdout(), cfg); err != nil {
			output.Error("%v", err)
			return err
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write .slideover/config.json from an interactive form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := getBaseDir()
		cfg, err := config.Load(dir)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		fields := newConfigFields(cfg)
		if err := fields.form().Run(); err != nil {
			output.Error("%v", err)
			return err
		}
		fields.apply(cfg)
		if err := config.Save(dir, cfg); err != nil {
			output.Error("failed to save config: %v", err)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "WROTE %s\n", config.Path(dir))
		return nil
	},
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|[0-9]{1,3})?$`)

// validateColor accepts "", an ANSI color number, or #rrggbb.
func validateColor(s string) error {
	if !colorPattern.MatchString(s) {
		return fmt.Errorf("want an ANSI color number or #rrggbb, got %q", s)
	}
	if s != "" && s[0] != '#' {
		if n, _ := strconv.Atoi(s); n > 255 {
			return fmt.Errorf("ANSI color %d out of range", n)
		}
	}
	return nil
}

// configFields holds the values edited by the init form.
type configFields struct {
	direction    string
	closeOutside bool
	background   string
}

func newConfigFields(cfg *config.Config) *configFields {
	f := &configFields{
		direction:    cfg.Direction,
		closeOutside: cfg.CloseOutsideOrDefault(),
		background:   cfg.Background,
	}
	if f.direction == "" {
		f.direction = string(overlay.Up)
	}
	return f
}

func (f *configFields) form() *huh.Form {
	var dirOpts []huh.Option[string]
	for _, d := range overlay.AllDirections() {
		dirOpts = append(dirOpts, huh.NewOption(string(d), string(d)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Slide direction").
				Options(dirOpts...).
				Value(&f.direction),
			huh.NewConfirm().
				Title("Close when the backdrop is clicked?").
				Value(&f.closeOutside),
			huh.NewInput().
				Title("Content background").
				Description("ANSI color number or #rrggbb, empty for white").
				Value(&f.background).
				Validate(validateColor),
		),
	)
}

// apply copies the form values into cfg. Duration overrides are kept.
func (f *configFields) apply(cfg *config.Config) {
	cfg.Direction = f.direction
	cfg.SetCloseOutside(f.closeOutside)
	cfg.Background = f.background
}

func printConfig(w io.Writer, cfg *config.Config) error {
	dir := overlay.Up
	if cfg.Direction != "" {
		d, err := overlay.ParseDirection(cfg.Direction)
		if err != nil {
			return fmt.Errorf("direction: %w", err)
		}
		dir = d
	}
	background := cfg.Background
	if err := validateColor(background); err != nil {
		output.Warning("background: %v", err)
	}
	if background == "" {
		background = fmt.Sprint(overlay.DefaultBackground)
	}

	overrides, err := cfg.DurationTable()
	if err != nil {
		return err
	}
	table := overlay.DefaultDurations.Merge(overrides)
	if err := table.Validate(); err != nil {
		return err
	}

	output.KeyValues(w, [][2]string{
		{"direction", string(dir)},
		{"close_outside", strconv.FormatBool(cfg.CloseOutsideOrDefault())},
		{"background", background},
	})
	fmt.Fprintln(w, "durations:")
	for _, d := range overlay.AllDirections() {
		fmt.Fprintf(w, "  %-6s open %v  close %v\n", d, table[d].Open, table[d].Close)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
