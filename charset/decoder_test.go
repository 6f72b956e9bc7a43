package charset_test

import (
	"testing"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	decoder := charset.NewDecoder()

	t.Run("gbk bytes round-trip without mojibake", func(t *testing.T) {
		t.Parallel()

		const text = "第一章 风雪夜归人"
		gbkBytes, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
		require.NoError(t, err)

		decoded, err := decoder.Decode(gbkBytes, novelgrab.CodecGBK)
		require.NoError(t, err)
		assert.Equal(t, text, decoded)
		assert.NotContains(t, decoded, "�")
	})

	t.Run("utf-8 passes through and strips BOM", func(t *testing.T) {
		t.Parallel()

		decoded, err := decoder.Decode([]byte("\xEF\xBB\xBFhello"), novelgrab.CodecUTF8)
		require.NoError(t, err)
		assert.Equal(t, "hello", decoded)
	})

	t.Run("other codec sniffs the encoding", func(t *testing.T) {
		t.Parallel()

		decoded, err := decoder.Decode([]byte("plain ascii text"), novelgrab.CodecOther)
		require.NoError(t, err)
		assert.Equal(t, "plain ascii text", decoded)
	})

	t.Run("empty body decodes to empty string", func(t *testing.T) {
		t.Parallel()

		decoded, err := decoder.Decode(nil, novelgrab.CodecGBK)
		require.NoError(t, err)
		assert.Equal(t, "", decoded)
	})
}
