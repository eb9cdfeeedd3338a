package cli

import (
	"fmt"
	"path/filepath"

	"github.com/pippidis/project-tools/internal/assets"
	"github.com/pippidis/project-tools/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newAssetsCmd(a *app) *cobra.Command {
	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Inspect and export the bundled templates",
	}
	assetsCmd.AddCommand(newAssetsListCmd(), newAssetsExportCmd(a))
	return assetsCmd
}

func newAssetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the template kinds and their default files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Join(scaffold.InstallDir(), scaffold.AssetsDirName)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Default template directory: %s\n", dir)
			for _, kind := range scaffold.TemplateKinds() {
				fmt.Fprintf(w, "  %-15s %s\n", kind, scaffold.TemplateFileName(kind))
			}
			return nil
		},
	}
}

func newAssetsExportCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write the bundled templates to a directory for customisation",
		Long: `Write the bundled templates to dir. Templates that already have content are
kept unless --force is given. Point a build at the directory with --templates
or the templates_dir setting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving %s: %w", args[0], err)
			}
			written, err := assets.Export(afero.NewOsFs(), dir, force, a.logger)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Exported %d template(s) to %s/\n", len(written), dir)
			for _, f := range written {
				fmt.Fprintf(w, "  %s\n", filepath.Base(f))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite templates that already have content")
	return cmd
}
