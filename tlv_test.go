package bindoc

import (
	"bytes"
	"encoding/hex"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestFrameTLVSingleFrame(t *testing.T) {
	// Scenario: AA 02 11 22 is one complete frame.
	seq := FrameTLV([]byte{0xAA, 0x02, 0x11, 0x22})
	require.Equal(t, KindTLVSequence, seq.Kind)
	require.Len(t, seq.Frames, 1)
	require.Equal(t, TLVFrame{Index: 0, Offset: 0, Type: 0xAA, Length: 2, ValueHex: "1122"}, seq.Frames[0])
	require.Equal(t, 0, seq.RemainderBytes)
}

func TestFrameTLVTruncatedValue(t *testing.T) {
	// Scenario: a frame declaring 5 value bytes with only 2 left is never
	// consumed; all 4 bytes become remainder.
	seq := FrameTLV([]byte{0xAA, 0x05, 0x11, 0x22})
	require.Empty(t, seq.Frames)
	require.Equal(t, 4, seq.RemainderBytes)
}

func TestFrameTLVMultipleFrames(t *testing.T) {
	data := []byte{
		0x01, 0x00, // zero-length value
		0x02, 0x03, 0xDE, 0xAD, 0xBE,
		0x03, 0x01, 0xEF,
		0x7F, // lone trailing type byte
	}
	seq := FrameTLV(data)
	require.Len(t, seq.Frames, 3)
	require.Equal(t, TLVFrame{Index: 0, Offset: 0, Type: 0x01, Length: 0, ValueHex: ""}, seq.Frames[0])
	require.Equal(t, TLVFrame{Index: 1, Offset: 2, Type: 0x02, Length: 3, ValueHex: "deadbe"}, seq.Frames[1])
	require.Equal(t, TLVFrame{Index: 2, Offset: 7, Type: 0x03, Length: 1, ValueHex: "ef"}, seq.Frames[2])
	require.Equal(t, 1, seq.RemainderBytes)
}

func TestFrameTLVEmptyInput(t *testing.T) {
	seq := FrameTLV(nil)
	require.Empty(t, seq.Frames)
	require.Equal(t, 0, seq.RemainderBytes)
}

func TestFrameTLVFrameCap(t *testing.T) {
	// 65 zero-length frames: the 65th is left as remainder, not an error.
	data := bytes.Repeat([]byte{0x10, 0x00}, MaxTLVFrames+1)
	seq := FrameTLV(data)
	require.Len(t, seq.Frames, MaxTLVFrames)
	require.Equal(t, 2, seq.RemainderBytes)
}

// The framing invariant must hold for arbitrary input, well-formed or not.
func TestFrameTLVLengthInvariant(t *testing.T) {
	invariant := func(data []byte) bool {
		seq := FrameTLV(data)
		total := seq.RemainderBytes
		for i, f := range seq.Frames {
			if f.Index != i {
				return false
			}
			total += 2 + int(f.Length)
		}
		return total == len(data)
	}
	if err := quick.Check(invariant, &quick.Config{MaxCount: 500}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

// Re-framing the exact byte concatenation of a frame sequence reproduces it.
func TestFrameTLVIdempotent(t *testing.T) {
	roundTrip := func(payloads [][]byte) bool {
		if len(payloads) > MaxTLVFrames {
			payloads = payloads[:MaxTLVFrames]
		}
		var buf []byte
		for i, p := range payloads {
			if len(p) > 255 {
				p = p[:255]
				payloads[i] = p
			}
			buf = append(buf, byte(i), byte(len(p)))
			buf = append(buf, p...)
		}
		seq := FrameTLV(buf)
		if len(seq.Frames) != len(payloads) || seq.RemainderBytes != 0 {
			return false
		}
		for i, f := range seq.Frames {
			if f.Type != byte(i) || int(f.Length) != len(payloads[i]) {
				return false
			}
			if f.ValueHex != hex.EncodeToString(payloads[i]) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(roundTrip, &quick.Config{MaxCount: 200}); err != nil {
		t.Errorf("Error: %v", err)
	}
}
