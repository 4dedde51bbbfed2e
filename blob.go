package bindoc

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
)

// RawBlob summarizes a payload that carries no structured schema.
type RawBlob struct {
	Kind               string  `json:"kind"`
	Length             int     `json:"length"`
	SHA256             string  `json:"sha256"`
	EntropyBitsPerByte float64 `json:"entropyBitsPerByte"`
}

func (*RawBlob) isStructure() {}

// SummarizeBlob hashes data and estimates its byte-value entropy. Both
// outputs are pure functions of data; this stage cannot fail.
func SummarizeBlob(data []byte) *RawBlob {
	sum := sha256.Sum256(data)
	return &RawBlob{
		Kind:               KindRawBlob,
		Length:             len(data),
		SHA256:             hex.EncodeToString(sum[:]),
		EntropyBitsPerByte: entropyBitsPerByte(data),
	}
}

// entropyBitsPerByte is the Shannon entropy of the byte-value distribution,
// in [0, 8]. Empty input short-circuits to 0 rather than dividing by zero.
func entropyBitsPerByte(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	n := float64(len(data))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
