package charset_test

import (
	"bytes"
	"testing"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/charset"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	detector := charset.NewDetector()

	t.Run("header charset wins over everything", func(t *testing.T) {
		t.Parallel()

		decision := detector.Detect(
			map[string]string{"Content-Type": "text/html; charset=utf-8"},
			[]byte("\xEF\xBB\xBF<html></html>"),
			"https://www.69shu.com/txt/1/2",
		)
		assert.Equal(t, novelgrab.CodecUTF8, decision.Codec)
		assert.Equal(t, novelgrab.SourceHeader, decision.Source)
	})

	t.Run("gb2312 header normalizes to gbk", func(t *testing.T) {
		t.Parallel()

		decision := detector.Detect(
			map[string]string{"Content-Type": "text/html; charset=gb2312"},
			nil,
			"https://example.com/page",
		)
		assert.Equal(t, novelgrab.CodecGBK, decision.Codec)
		assert.Equal(t, novelgrab.SourceHeader, decision.Source)
	})

	t.Run("header name matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		decision := detector.Detect(
			map[string]string{"content-type": "text/html; charset=GBK"},
			nil,
			"https://example.com/page",
		)
		assert.Equal(t, novelgrab.CodecGBK, decision.Codec)
		assert.Equal(t, novelgrab.SourceHeader, decision.Source)
	})

	t.Run("UTF-8 BOM beats byte statistics", func(t *testing.T) {
		t.Parallel()

		body := append([]byte("\xEF\xBB\xBF"), bytes.Repeat([]byte{0xD6, 0xD0}, 500)...)
		decision := detector.Detect(nil, body, "https://example.com/page")
		assert.Equal(t, novelgrab.CodecUTF8, decision.Codec)
		assert.Equal(t, novelgrab.SourceBOM, decision.Source)
	})

	t.Run("meta tag charset in document head", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<html><head><meta charset="GBK"></head><body></body></html>`)
		decision := detector.Detect(nil, body, "https://example.com/page")
		assert.Equal(t, novelgrab.CodecGBK, decision.Codec)
		assert.Equal(t, novelgrab.SourceMetaTag, decision.Source)
	})

	t.Run("http-equiv meta form is recognized", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<meta http-equiv="Content-Type" content="text/html; charset=gb2312">`)
		decision := detector.Detect(nil, body, "https://example.com/page")
		assert.Equal(t, novelgrab.CodecGBK, decision.Codec)
		assert.Equal(t, novelgrab.SourceMetaTag, decision.Source)
	})

	t.Run("known fiction host defaults to gbk", func(t *testing.T) {
		t.Parallel()

		decision := detector.Detect(nil, []byte("<html></html>"), "https://www.69shu.com/txt/1/2")
		assert.Equal(t, novelgrab.CodecGBK, decision.Codec)
		assert.Equal(t, novelgrab.SourceDomainHeuristic, decision.Source)
	})

	t.Run("dense high bytes fall back to gbk", func(t *testing.T) {
		t.Parallel()

		body := bytes.Repeat([]byte{0xD6, 0xD0, 0x20}, 400)
		decision := detector.Detect(nil, body, "https://example.com/page")
		assert.Equal(t, novelgrab.CodecGBK, decision.Codec)
		assert.Equal(t, novelgrab.SourceByteStatistics, decision.Source)
	})

	t.Run("default is utf-8", func(t *testing.T) {
		t.Parallel()

		decision := detector.Detect(nil, []byte("<html>plain ascii</html>"), "https://example.com/page")
		assert.Equal(t, novelgrab.CodecUTF8, decision.Codec)
		assert.Equal(t, novelgrab.SourceDefault, decision.Source)
	})

	t.Run("total on empty input", func(t *testing.T) {
		t.Parallel()

		decision := detector.Detect(nil, nil, "")
		assert.Equal(t, novelgrab.CodecUTF8, decision.Codec)
		assert.Equal(t, novelgrab.SourceDefault, decision.Source)
	})
}
