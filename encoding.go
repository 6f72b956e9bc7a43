package novelgrab

// Codec identifies a byte-to-text decoding scheme.
type Codec string

// Codecs the detector can resolve. GB2312 inputs normalize to CodecGBK;
// anything unrecognized decodes as CodecUTF8.
const (
	CodecUTF8  Codec = "utf-8"
	CodecGBK   Codec = "gbk"
	CodecOther Codec = "other"
)

// EncodingSource records which signal resolved the codec.
type EncodingSource string

// Detection signals in priority order.
const (
	SourceHeader          EncodingSource = "header"
	SourceBOM             EncodingSource = "bom"
	SourceMetaTag         EncodingSource = "meta-tag"
	SourceDomainHeuristic EncodingSource = "domain-heuristic"
	SourceByteStatistics  EncodingSource = "byte-statistics"
	SourceDefault         EncodingSource = "default"
)

// EncodingDecision is the detector's resolved codec and its provenance.
type EncodingDecision struct {
	Codec  Codec
	Source EncodingSource
}

// EncodingDetector resolves a decode codec for a fetched response.
// Detection is total: it always returns a decision, defaulting to utf-8
// when no signal applies.
type EncodingDetector interface {
	Detect(headers map[string]string, body []byte, url string) EncodingDecision
}

// Decoder converts raw bytes to text using a resolved codec.
type Decoder interface {
	Decode(body []byte, codec Codec) (string, error)
}
