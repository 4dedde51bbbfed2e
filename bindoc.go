// Package bindoc parses BDL blocks: documentation text that embeds a
// self-describing binary payload behind a "// BDL-META:" header line and a
// fenced, hex- or base64-encoded body. The decoded bytes are interpreted per
// the declared schema; payloads with no structured schema degrade to a
// content-hash and entropy summary.
//
// Parsing is a pure text-to-structure transform: no I/O, no shared state,
// safe for concurrent callers on independent inputs.
package bindoc

// Wire discriminators for the interpreted structure.
const (
	KindTLVSequence = "tlv-sequence"
	KindRawBlob     = "raw-blob"
)

// Structure is the interpreted payload: exactly one of *TLVSequence or
// *RawBlob.
type Structure interface {
	isStructure()
}

// Block pairs the declared metadata with the interpreted payload.
type Block struct {
	Meta      Meta      `json:"meta"`
	Structure Structure `json:"structure"`
}

// ParseBlock runs metadata extraction, payload decoding and schema
// interpretation over one block of text. Stages run in order and the first
// failure is returned as-is; there are no partial results.
func ParseBlock(block string) (Block, error) {
	meta, err := ExtractMeta(block)
	if err != nil {
		return Block{}, err
	}
	data, err := DecodePayload(block, meta.Encoding)
	if err != nil {
		return Block{}, err
	}
	return Block{Meta: meta, Structure: Interpret(meta, data)}, nil
}
