// Package observability provides formatted console output for the generator CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/export"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 76
)

// Printer handles formatted output for the console summary
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunSummary outputs the result of a generation run: the output path,
// the row count, and a preview of the first rows of the dataset.
func (p *Printer) PrintRunSummary(outputPath string, events []types.DowntimeEvent, previewRows int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("File: %s\n", outputPath))
	sb.WriteString(fmt.Sprintf("Rows: %d\n", len(events)))

	count := min(len(events), previewRows)
	if count > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%-4s %-17s %-14s %-14s %-4s %7s %4s\n",
			"id", "start", "line", "station", "code", "min", "pcs"))
		for i := 0; i < count; i++ {
			ev := events[i]
			sb.WriteString(fmt.Sprintf("%-4d %-17s %-14s %-14s %-4s %7.1f %4d\n",
				ev.EventID,
				ev.TimestampStart.Format("2006-01-02 15:04"),
				ev.LineID,
				ev.StationID,
				ev.FailureCode,
				ev.DowntimeMinutes,
				ev.PiecesLost))
		}
		if len(events) > count {
			sb.WriteString(fmt.Sprintf("... and %d more rows\n", len(events)-count))
		}
	}

	p.printBox("GENERATED DOWNTIME EVENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintManifest outputs where the run manifest was written and the checksum
// of the dataset it describes.
func (p *Printer) PrintManifest(manifest *export.RunManifest, manifestPath string) {
	if manifest == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s\n", manifestPath))
	sb.WriteString(fmt.Sprintf("Run:    %s\n", manifest.RunID))
	sb.WriteString(fmt.Sprintf("Seed:   %d\n", manifest.Seed))
	sb.WriteString(fmt.Sprintf("SHA256: %s", manifest.SHA256))

	p.printBox("RUN MANIFEST", sb.String())
}
