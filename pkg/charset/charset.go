// Package charset enumerates the text encodings the atlas knows by name
// and maps them onto golang.org/x/text codecs.
package charset

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

type Encoding string

const (
	ASCII       Encoding = "ascii"
	NextStep    Encoding = "nextstep"
	JapaneseEUC Encoding = "japaneseEUC"
	UTF8        Encoding = "utf8"
)

var Encodings = []Encoding{
	ASCII,
	NextStep,
	JapaneseEUC,
	UTF8,
}

var (
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrNoCodec         = errors.New("no codec for encoding")
	ErrNotASCII        = errors.New("text is not ascii")
)

var localizedNames = map[Encoding]string{
	ASCII:       "Western (ASCII)",
	NextStep:    "Western (NextStep)",
	JapaneseEUC: "Japanese (EUC)",
	UTF8:        "Unicode (UTF-8)",
}

func Parse(s string) (Encoding, error) {
	e := Encoding(s)
	if _, ok := localizedNames[e]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
	return e, nil
}

func (e Encoding) String() string {
	return string(e)
}

func (e Encoding) LocalizedName() string {
	return localizedNames[e]
}

// Codec returns the x/text codec for e. US-ASCII maps to windows-1252 as
// in the WHATWG encoding standard. NextStep has no codec.
func (e Encoding) Codec() (encoding.Encoding, bool) {
	switch e {
	case ASCII:
		return charmap.Windows1252, true
	case JapaneseEUC:
		return japanese.EUCJP, true
	case UTF8:
		return unicode.UTF8, true
	default:
		return nil, false
	}
}

// FromCodec is the inverse of Codec.
func FromCodec(c encoding.Encoding) (Encoding, bool) {
	switch c {
	case charmap.Windows1252:
		return ASCII, true
	case japanese.EUCJP:
		return JapaneseEUC, true
	case unicode.UTF8:
		return UTF8, true
	default:
		return "", false
	}
}

func (e Encoding) Encode(s string) ([]byte, error) {
	codec, ok := e.Codec()
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoCodec, e)
	}
	if e == ASCII && !isASCII(s) {
		return nil, ErrNotASCII
	}
	return codec.NewEncoder().Bytes([]byte(s))
}

func (e Encoding) Decode(b []byte) (string, error) {
	codec, ok := e.Codec()
	if !ok {
		return "", fmt.Errorf("%w %s", ErrNoCodec, e)
	}
	if e == ASCII && !isASCII(string(b)) {
		return "", ErrNotASCII
	}
	out, err := codec.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
