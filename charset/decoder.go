package charset

import (
	"bytes"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/novelgrab/novelgrab"
)

// Ensure Decoder implements novelgrab.Decoder at compile time.
var _ novelgrab.Decoder = (*Decoder)(nil)

// Decoder converts raw bytes to text using a resolved codec.
// Decoding is total in practice: invalid sequences decode to the
// replacement rune rather than failing, and unknown codecs fall back to
// WHATWG sniffing.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode converts body to text. gb2312 input normalizes upstream to
// CodecGBK; the GBK decoder is a superset of GB2312 so both decode
// identically.
func (d *Decoder) Decode(body []byte, codec novelgrab.Codec) (string, error) {
	switch codec {
	case novelgrab.CodecGBK:
		decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(body)
		if err != nil {
			// Invalid bytes already decoded to replacement runes; a hard
			// transform failure still yields the raw bytes as text.
			return string(body), nil
		}
		return string(decoded), nil

	case novelgrab.CodecOther:
		// The declared name was neither UTF-8 nor GB-family; let the
		// WHATWG sniffer pick the encoding from the bytes themselves.
		enc, _, _ := htmlcharset.DetermineEncoding(body, "")
		decoded, err := enc.NewDecoder().Bytes(body)
		if err != nil {
			return string(body), nil
		}
		return string(decoded), nil

	default:
		return string(bytes.TrimPrefix(body, utf8BOM)), nil
	}
}
