package output

import (
	"fmt"
	"strings"
)

// formatText renders one match per line as `candidate, "digest"`.
func (f *formatter) formatText(report *Report) string {
	f.log.Debug("Formatting text output")

	var b strings.Builder
	for _, m := range report.Matches {
		fmt.Fprintf(&b, "%d, %q\n", m.Candidate, m.Digest)
	}

	if f.config.WithStats {
		fmt.Fprintf(&b, "# %d match(es), %d candidate(s) examined in %.2fs\n",
			len(report.Matches), report.CandidatesExamined, report.ElapsedSeconds)
	}

	return b.String()
}
