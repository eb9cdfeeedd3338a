package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pippidis/project-tools/internal/assets"
	"github.com/pippidis/project-tools/internal/config"
	"github.com/pippidis/project-tools/internal/projectfile"
	"github.com/pippidis/project-tools/internal/scaffold"
	"github.com/spf13/cobra"
)

// resolveOptions holds the flags that shape the build configuration.
type resolveOptions struct {
	components   []string
	projectFile  string
	templatesDir string
	overrides    []string
}

func (o *resolveOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.components, "component", "c", nil, "Component to build (repeatable, comma separated)")
	cmd.Flags().StringVar(&o.projectFile, "project-file", "", "Project file (default: <root>/"+projectfile.DefaultFileName+" if present)")
	cmd.Flags().StringVar(&o.templatesDir, "templates", "", "Directory holding customised templates")
	cmd.Flags().StringArrayVar(&o.overrides, "set", nil, "Override a setting as key=value (repeatable, applied in order)")
}

func newBuildCmd(a *app) *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "build [root]",
		Short: "Build or complete the project tree",
		Long: `Build the project skeleton in root (default: current directory) and one
subtree per component.

Settings are layered: built-in defaults, then user settings, then the project
file, then flags. Files that already have content are left untouched.

Examples:
  project-tools build ./myproject -c library -c gui
  project-tools build --set common_folder_name=shared --set test_file_prefix=check_`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			templates, err := assets.Overlay(scaffold.InstallDir())
			if err != nil {
				return err
			}

			b := scaffold.New(cfg,
				scaffold.WithTemplateFs(templates),
				scaffold.WithLogger(a.logger),
			)
			result, err := b.Build()
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	opts.addFlags(cmd)
	return cmd
}

// resolve layers defaults, user settings, the project file and flags into
// a Config.
func (o *resolveOptions) resolve(cmd *cobra.Command, args []string) (*scaffold.Config, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	opts := []scaffold.Option{scaffold.WithRoot(absRoot)}

	if names := config.Components(); names != nil {
		opts = append(opts, scaffold.WithComponents(names...))
	}
	if dir := config.Get(config.KeyTemplatesDir); dir != "" {
		opts = append(opts, templateDirOptions(dir)...)
	}

	pf, err := o.loadProjectFile(absRoot)
	if err != nil {
		return nil, err
	}
	if pf != nil {
		if pf.Components != nil {
			opts = append(opts, scaffold.WithComponents(pf.Components...))
		}
		for kind, path := range pf.Templates {
			opts = append(opts, scaffold.WithTemplate(scaffold.TemplateKind(kind), path))
		}
		opts = append(opts, scaffold.WithOverrides(pf.Overrides))
	}

	if o.templatesDir != "" {
		opts = append(opts, templateDirOptions(o.templatesDir)...)
	}
	if cmd.Flags().Changed("component") {
		opts = append(opts, scaffold.WithComponents(o.components...))
	}
	for _, kv := range o.overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		opts = append(opts, scaffold.WithOverride(key, value))
	}

	return scaffold.NewConfig(scaffold.InstallDir(), opts...), nil
}

// loadProjectFile loads the explicit project file, or the one in root if it
// exists. It returns nil when there is none.
func (o *resolveOptions) loadProjectFile(root string) (*projectfile.File, error) {
	path := o.projectFile
	if path == "" {
		found, ok := projectfile.Find(root)
		if !ok {
			return nil, nil
		}
		path = found
	}

	pf, err := projectfile.Load(path)
	if err != nil {
		return nil, err
	}
	if err := projectfile.CheckVersion(pf.RequiredVersion, buildVersion); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pf, nil
}

func templateDirOptions(dir string) []scaffold.Option {
	var opts []scaffold.Option
	for _, kind := range scaffold.TemplateKinds() {
		opts = append(opts, scaffold.WithTemplate(kind, filepath.Join(dir, scaffold.TemplateFileName(kind))))
	}
	return opts
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Built project at %s/\n", result.Root)
	for _, f := range result.Written {
		fmt.Fprintf(w, "  %s\n", relativeTo(result.Root, f))
	}
	if len(result.Preserved) > 0 {
		fmt.Fprintln(w, "\nKept existing content:")
		for _, f := range result.Preserved {
			fmt.Fprintf(w, "  - %s\n", relativeTo(result.Root, f))
		}
	}
}

func relativeTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
