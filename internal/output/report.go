package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/mginspect/internal/mustgather"
	"github.com/quantmind-br/mginspect/internal/utils"
)

// ReportWriter writes archive summaries as markdown reports
type ReportWriter struct {
	dir    string
	force  bool
	dryRun bool
}

// ReportOptions contains options for the report writer
type ReportOptions struct {
	Dir    string
	Force  bool
	DryRun bool
}

// NewReportWriter creates a new report writer
func NewReportWriter(opts ReportOptions) *ReportWriter {
	if opts.Dir == "" {
		opts.Dir = "./reports"
	}

	return &ReportWriter{
		dir:    opts.Dir,
		force:  opts.Force,
		dryRun: opts.DryRun,
	}
}

// Path returns the report path for a summary
func (w *ReportWriter) Path(mg *mustgather.MustGather) string {
	return filepath.Join(w.dir, utils.SanitizeFilename(mg.Title)+".md")
}

// Exists checks if a report already exists for the summary
func (w *ReportWriter) Exists(mg *mustgather.MustGather) bool {
	_, err := os.Stat(w.Path(mg))
	return err == nil
}

// Write renders the summary to its report file and returns the path.
// Existing reports are left untouched unless Force; DryRun resolves the
// path without writing.
func (w *ReportWriter) Write(mg *mustgather.MustGather) (string, error) {
	path := w.Path(mg)

	if !w.force && w.Exists(mg) {
		return path, nil
	}

	if w.dryRun {
		return path, nil
	}

	if err := utils.EnsureDir(w.dir); err != nil {
		return "", err
	}

	content, err := reportContent(mg, time.Now().UTC())
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// reportFrontmatter is the metadata block at the top of a report
type reportFrontmatter struct {
	Title            string `yaml:"title"`
	Version          string `yaml:"version"`
	Root             string `yaml:"root"`
	GeneratedAt      string `yaml:"generated_at"`
	Nodes            int    `yaml:"nodes"`
	ClusterOperators int    `yaml:"cluster_operators"`
	Machines         int    `yaml:"machines"`
	Skipped          int    `yaml:"skipped,omitempty"`
}

// reportContent builds the full markdown document
func reportContent(mg *mustgather.MustGather, generatedAt time.Time) (string, error) {
	fm := reportFrontmatter{
		Title:            mg.Title,
		Version:          mg.Version,
		Root:             mg.Root,
		GeneratedAt:      generatedAt.Format(time.RFC3339),
		Nodes:            len(mg.Nodes),
		ClusterOperators: len(mg.ClusterOperators),
		Machines:         len(mg.Machines),
		Skipped:          mg.Skipped,
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "---\n%s---\n\n", string(data))
	fmt.Fprintf(&b, "# %s\n\n", mg.Title)
	fmt.Fprintf(&b, "Cluster version: %s\n\n", mg.Version)

	b.WriteString("## Nodes\n\n")
	if len(mg.Nodes) == 0 {
		b.WriteString("_none found_\n\n")
	} else {
		b.WriteString("| Name | Version | Ready | Roles |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, n := range mg.Nodes {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				n.Name, n.Version, n.Ready, strings.Join(n.Roles, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Cluster Operators\n\n")
	if len(mg.ClusterOperators) == 0 {
		b.WriteString("_none found_\n\n")
	} else {
		b.WriteString("| Name | Version | Available | Progressing | Degraded |\n")
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, co := range mg.ClusterOperators {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				co.Name, co.Version, co.Available, co.Progressing, co.Degraded)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Machines\n\n")
	if len(mg.Machines) == 0 {
		b.WriteString("_none found_\n")
	} else {
		b.WriteString("| Name | Phase | Role |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, m := range mg.Machines {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", m.Name, m.Phase, m.Role)
		}
	}

	if mg.Skipped > 0 {
		fmt.Fprintf(&b, "\n> %d manifest(s) could not be read while building this report.\n", mg.Skipped)
	}

	return b.String(), nil
}
