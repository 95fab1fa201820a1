package output

import (
	"encoding/json"
	"time"

	"github.com/sonemaro/hashfinder/pkg/logger"
	"github.com/sonemaro/hashfinder/pkg/search"
)

// jsonMatch represents a single match in JSON output
type jsonMatch struct {
	Candidate uint64 `json:"candidate"`
	Digest    string `json:"digest"`
}

// jsonStats represents search statistics in JSON output
type jsonStats struct {
	Zeros              int     `json:"zeros"`
	Results            int     `json:"results"`
	Strategy           string  `json:"strategy"`
	Workers            int     `json:"workers"`
	CandidatesExamined uint64  `json:"candidatesExamined"`
	ElapsedSeconds     float64 `json:"elapsedSeconds"`
}

// jsonOutput represents the complete JSON output
type jsonOutput struct {
	Matches    []jsonMatch `json:"matches"`
	Statistics *jsonStats  `json:"statistics,omitempty"`
	Generated  time.Time   `json:"generated"`
}

func (f *formatter) formatJSON(report *Report) (string, error) {
	f.log.Debug("Formatting JSON output")

	output := f.buildOutput(report)

	bytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}

func (f *formatter) buildOutput(report *Report) *jsonOutput {
	output := &jsonOutput{
		Matches:   convertMatches(report.Matches),
		Generated: time.Now(),
	}

	if f.config.WithStats {
		output.Statistics = &jsonStats{
			Zeros:              report.Zeros,
			Results:            report.Results,
			Strategy:           report.Strategy,
			Workers:            report.Workers,
			CandidatesExamined: report.CandidatesExamined,
			ElapsedSeconds:     report.ElapsedSeconds,
		}
	}

	return output
}

func convertMatches(matches []search.Match) []jsonMatch {
	converted := make([]jsonMatch, 0, len(matches))
	for _, m := range matches {
		converted = append(converted, jsonMatch{
			Candidate: m.Candidate,
			Digest:    m.Digest,
		})
	}
	return converted
}
