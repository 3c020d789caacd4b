/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"
	"strings"

	"github.com/suparena/klvregistry/errors"
)

// Codec is the abstract identity of an essence decoder. None marks raw,
// uncompressed or PCM essence that is identified structurally rather than by
// a decoder.
type Codec int

const (
	None Codec = iota
	MPEG2
	MPEG4
	DV
	JPEG2000
	VC3
	H264
	V210
	ALaw
	AC3
	MP2
)

var codecNames = [...]string{
	None:     "none",
	MPEG2:    "mpeg2",
	MPEG4:    "mpeg4",
	DV:       "dv",
	JPEG2000: "jpeg2000",
	VC3:      "vc3",
	H264:     "h264",
	V210:     "v210",
	ALaw:     "alaw",
	AC3:      "ac3",
	MP2:      "mp2",
}

// Codecs returns every codec tag, None included.
func Codecs() []Codec {
	return []Codec{None, MPEG2, MPEG4, DV, JPEG2000, VC3, H264, V210, ALaw, AC3, MP2}
}

func (c Codec) String() string {
	if c < 0 || int(c) >= len(codecNames) {
		return fmt.Sprintf("Codec(%d)", int(c))
	}
	return codecNames[c]
}

// Valid reports whether c is a known tag.
func (c Codec) Valid() bool {
	return c >= None && int(c) < len(codecNames)
}

// IsRaw reports whether c is the no-decoder tag.
func (c Codec) IsRaw() bool {
	return c == None
}

// Parse accepts a codec name, case-insensitively. "raw" and "pcm" are
// accepted for None.
func Parse(name string) (Codec, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "raw", "pcm", "uncompressed":
		return None, nil
	}
	for _, c := range Codecs() {
		if n == c.String() {
			return c, nil
		}
	}
	return None, errors.NewValidationError("codec", fmt.Sprintf("unknown codec %q", name))
}

// MarshalText implements encoding.TextMarshaler.
func (c Codec) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.NewValidationError("codec", fmt.Sprintf("cannot marshal %s", c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Codec) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
