// Package charset resolves decode codecs for fetched responses and
// decodes raw bytes to text. Detection is a priority cascade over
// headers, byte patterns, domain heuristics, and byte statistics; it is
// total and never fails.
package charset

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/novelgrab/novelgrab"
)

// Detection constants. Fiction sites frequently omit or misstate the
// charset, so byte-level heuristics back up the declared signals.
const (
	// metaScanBytes bounds the ASCII scan for a meta charset tag.
	metaScanBytes = 2048

	// statSampleBytes bounds the high-byte statistics sample.
	statSampleBytes = 1000

	// highByteThreshold is the high-byte fraction above which bytes are
	// assumed to be a double-byte CJK encoding rather than UTF-8.
	highByteThreshold = 0.30
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// metaCharsetRe matches both <meta charset="..."> and the http-equiv
// Content-Type form after the prefix has been lowercased.
var metaCharsetRe = regexp.MustCompile(`<meta[^>]+charset\s*=\s*["']?\s*([a-z0-9_-]+)`)

// headerCharsetRe extracts the charset parameter from a Content-Type value.
var headerCharsetRe = regexp.MustCompile(`charset\s*=\s*["']?\s*([A-Za-z0-9_-]+)`)

// Ensure Detector implements novelgrab.EncodingDetector at compile time.
var _ novelgrab.EncodingDetector = (*Detector)(nil)

// Detector resolves a decode codec from response headers, raw bytes,
// and the page URL.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect runs the priority cascade; the first matching signal wins.
// It always returns a decision, defaulting to utf-8.
func (d *Detector) Detect(headers map[string]string, body []byte, pageURL string) novelgrab.EncodingDecision {
	// 1. Content-Type header charset parameter.
	if codec, ok := headerCodec(headers); ok {
		return novelgrab.EncodingDecision{Codec: codec, Source: novelgrab.SourceHeader}
	}

	// 2. UTF-8 byte order mark.
	if bytes.HasPrefix(body, utf8BOM) {
		return novelgrab.EncodingDecision{Codec: novelgrab.CodecUTF8, Source: novelgrab.SourceBOM}
	}

	// 3. Meta charset declaration in the document head.
	if codec, ok := metaCodec(body); ok {
		return novelgrab.EncodingDecision{Codec: codec, Source: novelgrab.SourceMetaTag}
	}

	// 4. Known Chinese web-fiction hosts default to GBK.
	if u, err := url.Parse(pageURL); err == nil && novelgrab.IsGBKHost(u.Hostname()) {
		return novelgrab.EncodingDecision{Codec: novelgrab.CodecGBK, Source: novelgrab.SourceDomainHeuristic}
	}

	// 5. Dense high-byte runs indicate double-byte CJK bytes; UTF-8
	// multi-byte sequences stay well under the threshold for mixed text.
	if highByteFraction(body) > highByteThreshold {
		return novelgrab.EncodingDecision{Codec: novelgrab.CodecGBK, Source: novelgrab.SourceByteStatistics}
	}

	// 6. Default.
	return novelgrab.EncodingDecision{Codec: novelgrab.CodecUTF8, Source: novelgrab.SourceDefault}
}

// headerCodec reads the charset parameter from the Content-Type header,
// matched case-insensitively.
func headerCodec(headers map[string]string) (novelgrab.Codec, bool) {
	for name, value := range headers {
		if !strings.EqualFold(name, "Content-Type") {
			continue
		}
		if m := headerCharsetRe.FindStringSubmatch(value); m != nil {
			return normalizeCharsetName(m[1])
		}
	}
	return "", false
}

// metaCodec scans the leading bytes for an HTML meta charset
// declaration. The scan treats the prefix as ASCII, which is sound for
// the markup characters the pattern matches.
func metaCodec(body []byte) (novelgrab.Codec, bool) {
	sample := body
	if len(sample) > metaScanBytes {
		sample = sample[:metaScanBytes]
	}
	if m := metaCharsetRe.FindSubmatch(bytes.ToLower(sample)); m != nil {
		return normalizeCharsetName(string(m[1]))
	}
	return "", false
}

// normalizeCharsetName maps a declared charset name to a codec.
// Any GB-family name (gb2312, gbk, gb18030) normalizes to gbk.
func normalizeCharsetName(name string) (novelgrab.Codec, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "":
		return "", false
	case name == "utf-8" || name == "utf8":
		return novelgrab.CodecUTF8, true
	case strings.HasPrefix(name, "gb"):
		return novelgrab.CodecGBK, true
	default:
		return novelgrab.CodecOther, true
	}
}

// highByteFraction returns the fraction of bytes above 127 in the
// leading sample.
func highByteFraction(body []byte) float64 {
	sample := body
	if len(sample) > statSampleBytes {
		sample = sample[:statSampleBytes]
	}
	if len(sample) == 0 {
		return 0
	}
	high := 0
	for _, b := range sample {
		if b > 127 {
			high++
		}
	}
	return float64(high) / float64(len(sample))
}
