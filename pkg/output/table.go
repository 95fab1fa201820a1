package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// formatTable renders matches as an aligned two-column table with an
// optional statistics footer.
func (f *formatter) formatTable(report *Report) string {
	f.log.Debug("Formatting table output")

	header := fmt.Sprintf("%-12s  %s", "CANDIDATE", "DIGEST")
	if f.config.WithColors {
		header = color.New(color.Bold).Sprint(header)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	for _, m := range report.Matches {
		digest := m.Digest
		if f.config.WithColors && report.Zeros > 0 && report.Zeros <= len(digest) {
			// Highlight the matching suffix.
			prefix := digest[:len(digest)-report.Zeros]
			suffix := color.New(color.FgGreen, color.Bold).Sprint(digest[len(digest)-report.Zeros:])
			digest = prefix + suffix
		}
		fmt.Fprintf(&b, "%-12d  %s\n", m.Candidate, digest)
	}

	if f.config.WithStats {
		footer := fmt.Sprintf("%d match(es), %d candidate(s) examined in %.2fs",
			len(report.Matches), report.CandidatesExamined, report.ElapsedSeconds)
		if f.config.WithColors {
			footer = color.New(color.Faint).Sprint(footer)
		}
		b.WriteString("\n")
		b.WriteString(footer)
		b.WriteString("\n")
	}

	return b.String()
}
