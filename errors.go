package bindoc

import "fmt"

// ErrorKind classifies parse failures by pipeline stage.
type ErrorKind int

const (
	// Metadata stage.
	ErrMetaNotFound ErrorKind = iota + 1
	ErrMetaInvalid
	ErrUnsupportedVersion
	ErrMissingEncoding
	// Decode stage.
	ErrFenceNotFound
	ErrFenceLanguageMismatch
	ErrOddLengthHex
	ErrHexDecode
	ErrBase64Decode
	ErrUnsupportedEncoding
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMetaNotFound:
		return "meta not found"
	case ErrMetaInvalid:
		return "meta invalid"
	case ErrUnsupportedVersion:
		return "unsupported version"
	case ErrMissingEncoding:
		return "missing encoding"
	case ErrFenceNotFound:
		return "fence not found"
	case ErrFenceLanguageMismatch:
		return "fence language mismatch"
	case ErrOddLengthHex:
		return "odd-length hex"
	case ErrHexDecode:
		return "hex decode error"
	case ErrBase64Decode:
		return "base64 decode error"
	case ErrUnsupportedEncoding:
		return "unsupported encoding"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error carries the classification and a detail string for diagnostics.
// All parse failures are terminal; there is no recovery inside the parser.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Detail == "" {
		return fmt.Sprintf("bindoc: %v", e.Kind)
	}
	return fmt.Sprintf("bindoc: %v: %s", e.Kind, e.Detail)
}

func errf(k ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: k, Detail: fmt.Sprintf(format, args...)}
}
