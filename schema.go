package bindoc

// Schema enumerates the interpreters the parser can apply to decoded bytes.
// The set is closed: names that map to no structured schema select the
// raw-blob summary, never an error.
type Schema int

const (
	SchemaRawBlob Schema = iota
	SchemaExampleTLV
)

const exampleTLVName = "ExampleTLV"

// SchemaFor resolves a declared schema name to an interpreter variant.
func SchemaFor(name string) Schema {
	switch name {
	case exampleTLVName:
		return SchemaExampleTLV
	default:
		return SchemaRawBlob
	}
}

// Interpret applies the schema declared in meta to the decoded payload. The
// decoded bytes are consumed here and not retained. Interpretation has no
// failure modes: truncated TLV input degrades to remainder bytes.
func Interpret(meta Meta, data []byte) Structure {
	switch SchemaFor(meta.SchemaName) {
	case SchemaExampleTLV:
		return FrameTLV(data)
	default:
		return SummarizeBlob(data)
	}
}
