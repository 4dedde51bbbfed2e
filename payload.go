package bindoc

import (
	"encoding/base64"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"

	"github.com/rawbytedev/bindoc/internal/hexdump"
)

// Encodings a block may declare; the fence language tag must match.
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// First fence wins; later fenced regions in the same block are ignored.
var fenceRe = regexp.MustCompile("(?s)```([A-Za-z0-9]+)\r?\n(.*?)```")

// DecodePayload locates the first fenced region in block and decodes its body
// into raw bytes according to the declared encoding. The result may be empty.
func DecodePayload(block, encoding string) ([]byte, error) {
	m := fenceRe.FindStringSubmatch(block)
	if m == nil {
		return nil, errf(ErrFenceNotFound, "no fenced payload region")
	}
	lang := strings.ToLower(m[1])
	body := m[2]

	switch encoding {
	case EncodingHex:
		if lang != EncodingHex {
			return nil, errf(ErrFenceLanguageMismatch, "expected hex fence, got %s", lang)
		}
		return decodeHexBody(body)
	case EncodingBase64:
		if lang != EncodingBase64 {
			return nil, errf(ErrFenceLanguageMismatch, "expected base64 fence, got %s", lang)
		}
		return decodeBase64Body(body)
	default:
		return nil, errf(ErrUnsupportedEncoding, "%s", encoding)
	}
}

func decodeHexBody(body string) ([]byte, error) {
	clean := hexdump.Normalize(body)
	if len(clean)%2 != 0 {
		return nil, errf(ErrOddLengthHex, "%d hex digits", len(clean))
	}
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return nil, errf(ErrHexDecode, "%v", err)
	}
	return raw, nil
}

func decodeBase64Body(body string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, body)
	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, errf(ErrBase64Decode, "%v", err)
	}
	return raw, nil
}
