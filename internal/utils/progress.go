package utils

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Progress bar descriptions for archive inspection stages
const (
	DescLocating  = "Locating archive root"
	DescScanning  = "Scanning resources"
	DescNodes     = "Reading nodes"
	DescOperators = "Reading cluster operators"
	DescMachines  = "Reading machines"
	DescWriting   = "Writing report"
)

// NewProgressBar creates a configured progress bar for n items.
// Output goes to stderr so stdout stays clean for rendered results.
func NewProgressBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// NewSpinner creates an indeterminate progress spinner
func NewSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}
