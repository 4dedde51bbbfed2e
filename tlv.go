package bindoc

import "encoding/hex"

// MaxTLVFrames bounds framing on pathological input. Hitting the cap is not
// an error; the rest of the buffer becomes remainder, same as truncation.
const MaxTLVFrames = 64

// TLVFrame is one type-length-value record of an ExampleTLV payload.
// Offset is the byte position of the frame's type byte within the payload.
type TLVFrame struct {
	Index    int    `json:"index"`
	Offset   int    `json:"offset"`
	Type     byte   `json:"type"`
	Length   byte   `json:"length"`
	ValueHex string `json:"valueHex"`
}

// TLVSequence holds the frames recovered from a payload in order of
// appearance, plus the count of trailing bytes that formed no complete frame.
//
// Invariant: sum(2+frame.Length) + RemainderBytes == len(payload).
type TLVSequence struct {
	Kind           string     `json:"kind"`
	Frames         []TLVFrame `json:"frames"`
	RemainderBytes int        `json:"remainderBytes"`
}

func (*TLVSequence) isStructure() {}

// FrameTLV walks data as a flat type-length-value sequence. A frame whose
// declared value runs past the end of data is not consumed: framing stops and
// everything from its type byte onward counts as remainder.
func FrameTLV(data []byte) *TLVSequence {
	frames := []TLVFrame{}
	offset := 0
	for len(data)-offset >= 2 && len(frames) < MaxTLVFrames {
		typ := data[offset]
		length := data[offset+1]
		start := offset + 2
		end := start + int(length)
		if end > len(data) {
			break
		}
		frames = append(frames, TLVFrame{
			Index:    len(frames),
			Offset:   offset,
			Type:     typ,
			Length:   length,
			ValueHex: hex.EncodeToString(data[start:end]),
		})
		offset = end
	}
	return &TLVSequence{
		Kind:           KindTLVSequence,
		Frames:         frames,
		RemainderBytes: len(data) - offset,
	}
}
