// Package docscan locates and parses every BDL block inside a larger
// document. Each metadata marker line starts a new segment; a segment runs to
// the next marker or to the end of the document and is parsed independently,
// so one malformed block never hides the others.
package docscan

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rawbytedev/bindoc"
)

// Report is the outcome for one block found in a document. Exactly one of
// Block or Error is set.
type Report struct {
	Line  int           `json:"line"`
	Block *bindoc.Block `json:"block,omitempty"`
	Error string        `json:"error,omitempty"`
}

// Scan parses every BDL block in doc and reports each in document order.
// Line numbers are 1-based positions of the marker lines. A document with no
// markers yields an empty slice.
func Scan(doc string) []Report {
	lines := strings.Split(doc, "\n")
	var starts []int
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), bindoc.MetaMarker) {
			starts = append(starts, i)
		}
	}

	reports := make([]Report, 0, len(starts))
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		segment := strings.Join(lines[start:end], "\n")

		report := Report{Line: start + 1}
		block, err := bindoc.ParseBlock(segment)
		if err != nil {
			log.Warn().Int("line", report.Line).Err(err).Msg("block failed to parse")
			report.Error = err.Error()
		} else {
			log.Debug().Int("line", report.Line).
				Str("schema", block.Meta.SchemaName).
				Msg("block parsed")
			report.Block = &block
		}
		reports = append(reports, report)
	}
	return reports
}
