package catalog

// Tool is one installable entry in the catalog.
type Tool struct {
	Name        string `toml:"name"`
	Crate       string `toml:"crate"`
	Command     string `toml:"command"`
	Description string `toml:"description"`
	Tip         string `toml:"tip"`
	Homepage    string `toml:"homepage"`
}

// CommandName returns the binary probed on PATH.
// Defaults to the tool name when the catalog entry sets no command
// (most crates install a binary named after the tool).
func (t Tool) CommandName() string {
	if t.Command != "" {
		return t.Command
	}
	return t.Name
}

// CrateName returns the argument passed to `cargo install`,
// defaulting to the tool name.
func (t Tool) CrateName() string {
	if t.Crate != "" {
		return t.Crate
	}
	return t.Name
}
