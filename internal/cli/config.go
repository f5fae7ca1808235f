package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirbrooks/tasker-shell/internal/store"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change config.yaml",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := a.open()
			if err != nil {
				a.fail(err)
				return nil
			}
			cfg := ws.Config()
			w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE")
			fmt.Fprintf(w, "root\t%s\n", ws.Root)
			fmt.Fprintf(w, "config_path\t%s\n", ws.ConfigPath())
			fmt.Fprintf(w, "data_path\t%s\n", ws.DataPath())
			fmt.Fprintf(w, "data_file\t%s\n", cfg.DataFile)
			fmt.Fprintf(w, "quiet\t%t\n", cfg.Quiet)
			fmt.Fprintf(w, "banner\t%t\n", cfg.Banner)
			fmt.Fprintf(w, "log_level\t%s\n", cfg.LogLevel)
			return w.Flush()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set data_file, quiet, banner or log_level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.configSet(args[0], args[1])
		},
	})
	return cmd
}

func (a *app) configSet(key, value string) error {
	// Start from the file's values, not this run's flag overrides.
	ws, err := store.Open(a.gf.Root)
	if err != nil {
		a.fail(err)
		return nil
	}
	cfg := ws.Config()
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	switch key {
	case "data_file":
		if value == "" {
			return configSetInvalid(key, value)
		}
		cfg.DataFile = value
	case "quiet", "banner":
		b, ok := parseBool(value)
		if !ok {
			return configSetInvalid(key, value)
		}
		if key == "quiet" {
			cfg.Quiet = b
		} else {
			cfg.Banner = b
		}
	case "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = value
		default:
			return configSetInvalid(key, value)
		}
	default:
		return fmt.Errorf("unknown config key %q (want data_file, quiet, banner or log_level)", key)
	}
	if err := ws.SaveConfig(cfg); err != nil {
		a.fail(err)
		return nil
	}
	if !cfg.Quiet {
		fmt.Fprintf(a.out, "Set %s = %s\n", key, value)
	}
	return nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

func configSetInvalid(key, value string) error {
	return fmt.Errorf("invalid value for %s: %q", key, value)
}
