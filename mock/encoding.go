package mock

import "github.com/novelgrab/novelgrab"

var _ novelgrab.EncodingDetector = (*EncodingDetector)(nil)

// EncodingDetector is a mock implementation of novelgrab.EncodingDetector.
type EncodingDetector struct {
	DetectFn func(headers map[string]string, body []byte, url string) novelgrab.EncodingDecision
}

func (d *EncodingDetector) Detect(headers map[string]string, body []byte, url string) novelgrab.EncodingDecision {
	return d.DetectFn(headers, body, url)
}

var _ novelgrab.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of novelgrab.Decoder.
type Decoder struct {
	DecodeFn func(body []byte, codec novelgrab.Codec) (string, error)
}

func (d *Decoder) Decode(body []byte, codec novelgrab.Codec) (string, error) {
	return d.DecodeFn(body, codec)
}
