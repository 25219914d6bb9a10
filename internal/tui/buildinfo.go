package tui

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
}

// String is the version line shown in the help dialog.
func (b BuildInfo) String() string {
	if b.Version == "" {
		return "dev"
	}
	return b.Version
}
