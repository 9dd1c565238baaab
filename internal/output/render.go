package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/mginspect/internal/domain"
	"github.com/quantmind-br/mginspect/internal/mustgather"
)

// Format selects a summary rendering
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", &domain.ValidationError{
			Field:   "format",
			Value:   s,
			Message: "must be one of: text, json, yaml",
		}
	}
}

// Render writes the summary to w in the requested format
func Render(w io.Writer, mg *mustgather.MustGather, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(mg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(mg); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	case FormatText:
		return renderText(w, mg)
	default:
		return &domain.ValidationError{Field: "format", Value: string(format), Message: "unknown format"}
	}
}

var (
	heading   = color.New(color.FgCyan, color.Bold)
	stateGood = color.New(color.FgGreen)
	stateBad  = color.New(color.FgRed)
	stateWarn = color.New(color.FgYellow)
)

// colorState picks a color for a condition status. good is the status
// value that represents health for this condition.
func colorState(status, good string) string {
	switch status {
	case good:
		return stateGood.Sprint(status)
	case mustgather.VersionUnknown:
		return stateWarn.Sprint(status)
	default:
		return stateBad.Sprint(status)
	}
}

// colorPhase picks a color for a machine phase. Transitional phases are
// neither healthy nor failed.
func colorPhase(phase string) string {
	switch phase {
	case "Running":
		return stateGood.Sprint(phase)
	case "Failed", "Deleting":
		return stateBad.Sprint(phase)
	default:
		return stateWarn.Sprint(phase)
	}
}

func renderText(w io.Writer, mg *mustgather.MustGather) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Must-Gather:"), mg.Title)
	fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Root:"), mg.Root)
	fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Version:"), mg.Version)
	if mg.FromCache {
		fmt.Fprintf(tw, "%s\t%s\n", heading.Sprint("Source:"), "cache")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", heading.Sprintf("Nodes (%d)", len(mg.Nodes)))
	if len(mg.Nodes) > 0 {
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tVERSION\tREADY\tROLES")
		for _, n := range mg.Nodes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				n.Name, n.Version, colorState(n.Ready, "True"), strings.Join(n.Roles, ","))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\n%s\n", heading.Sprintf("Cluster Operators (%d)", len(mg.ClusterOperators)))
	if len(mg.ClusterOperators) > 0 {
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tVERSION\tAVAILABLE\tPROGRESSING\tDEGRADED")
		for _, co := range mg.ClusterOperators {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				co.Name, co.Version,
				colorState(co.Available, "True"),
				colorState(co.Progressing, "False"),
				colorState(co.Degraded, "False"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\n%s\n", heading.Sprintf("Machines (%d)", len(mg.Machines)))
	if len(mg.Machines) > 0 {
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tPHASE\tROLE")
		for _, m := range mg.Machines {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, colorPhase(m.Phase), m.Role)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if mg.Skipped > 0 {
		fmt.Fprintf(w, "\n%s\n", stateWarn.Sprintf("%d manifest(s) could not be read", mg.Skipped))
	}

	return nil
}
