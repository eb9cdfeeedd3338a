package projectfile

// DefaultFileName is the project file looked up in the build root.
const DefaultFileName = "project-tools.yaml"

// File is the decoded content of a project file.
type File struct {
	// RequiredVersion is a semver constraint the running tool must satisfy.
	RequiredVersion string `yaml:"required_version,omitempty" json:"required_version,omitempty"`
	// Components is nil when the file does not mention components at all.
	Components []string          `yaml:"components,omitempty" json:"components,omitempty"`
	Templates  map[string]string `yaml:"templates,omitempty" json:"templates,omitempty"`
	Overrides  map[string]string `yaml:"overrides,omitempty" json:"overrides,omitempty"`

	// Path is where the file was read from.
	Path string `yaml:"-" json:"-"`
}
