package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pippidis/project-tools/internal/projectfile"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a project file",
		Long: `Validate a project file against the project file schema.

path may be the file itself or a directory holding ` + projectfile.DefaultFileName + `
(default: current directory).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				path = filepath.Join(path, projectfile.DefaultFileName)
			}

			result, err := projectfile.ValidateFile(path)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if result.Valid {
				fmt.Fprintf(w, "%s is valid\n", path)
				return nil
			}

			fmt.Fprintf(w, "%s has %d issue(s):\n", path, len(result.Issues))
			for _, issue := range result.Issues {
				if issue.Path != "" {
					fmt.Fprintf(w, "  - %s: %s\n", issue.Path, issue.Message)
				} else {
					fmt.Fprintf(w, "  - %s\n", issue.Message)
				}
			}
			return fmt.Errorf("%w: %s", projectfile.ErrInvalid, path)
		},
	}
}
