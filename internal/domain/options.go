package domain

// CommonOptions holds flags shared across CLI commands
type CommonOptions struct {
	// Verbose enables debug logging
	Verbose bool

	// NoCache disables the summary cache
	NoCache bool

	// RefreshCache forces re-inspection, bypassing cached summaries
	RefreshCache bool

	// NoProgress disables progress indicators
	NoProgress bool

	// NoColor disables colored output
	NoColor bool

	// DryRun previews actions without writing files
	DryRun bool

	// Force overwrites existing report files
	Force bool
}
