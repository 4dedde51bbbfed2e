package bindoc

import (
	"encoding/json"
	"strings"
)

// MetaMarker prefixes the header line that declares a BDL block.
const MetaMarker = "// BDL-META:"

// Meta is the declared description of the embedded payload. It is produced
// once per parse and never mutated afterward.
type Meta struct {
	Version      int      `json:"version"`
	Encoding     string   `json:"encoding"`
	Endianness   string   `json:"endianness"`
	FramingType  string   `json:"framingType"`
	SchemaName   string   `json:"schemaName"`
	SampleLength int      `json:"sampleLength"`
	SafetyFlags  []string `json:"safetyFlags"`
	Tags         []string `json:"tags"`
}

// ExtractMeta finds the first marker line in block and parses the JSON object
// that follows the marker on the same line.
func ExtractMeta(block string) (Meta, error) {
	var header string
	found := false
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), MetaMarker) {
			header = line
			found = true
			break
		}
	}
	if !found {
		return Meta{}, errf(ErrMetaNotFound, "no %q header line", MetaMarker)
	}

	_, raw, _ := strings.Cut(header, MetaMarker)
	var m Meta
	if err := json.Unmarshal([]byte(strings.TrimLeft(raw, " \t")), &m); err != nil {
		return Meta{}, errf(ErrMetaInvalid, "%v", err)
	}
	if m.Version != 1 {
		return Meta{}, errf(ErrUnsupportedVersion, "got %d", m.Version)
	}
	if m.Encoding == "" {
		return Meta{}, &Error{Kind: ErrMissingEncoding}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return m, nil
}
