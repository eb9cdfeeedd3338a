package cli

import (
	"fmt"
	"strings"

	"github.com/pippidis/project-tools/internal/config"
	"github.com/pippidis/project-tools/internal/scaffold"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings and inspect the build configuration",
		Long: `Read and write settings stored at ~/.project-tools/config.yaml, or show the
configuration a build would use.

Settings: ` + strings.Join(config.Keys, ", "),
	}
	configCmd.AddCommand(newConfigSetCmd(), newConfigGetCmd(), newConfigShowCmd())
	return configCmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a user setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a user setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "show [root]",
		Short: "Print the resolved build configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(configView(cfg))
			if err != nil {
				return fmt.Errorf("marshaling configuration: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	opts.addFlags(cmd)
	return cmd
}

// configView flattens a Config into override keys, so the output can be fed
// back through --set or a project file.
func configView(cfg *scaffold.Config) map[string]interface{} {
	view := make(map[string]interface{}, len(scaffold.Keys())+1)
	for _, key := range scaffold.Keys() {
		value, _ := cfg.Get(key)
		view[key] = value
	}
	view["components"] = cfg.Components
	if len(cfg.Extra) > 0 {
		view["extra"] = cfg.Extra
	}
	return view
}
