package novelgrab_test

import (
	"strings"
	"testing"

	"github.com/novelgrab/novelgrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	t.Run("valid URLs return the trimmed canonical string", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"https://www.69shu.com/txt/1/2.html",
			"http://example.com/chapter",
			"  https://example.com/padded  ",
		} {
			got, err := novelgrab.ValidateURL(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, strings.TrimSpace(raw), got)
		}
	})

	t.Run("empty and whitespace input", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := novelgrab.ValidateURL(raw)
			require.Error(t, err, "%q", raw)
			assert.Equal(t, novelgrab.EINVALID, novelgrab.ErrorCode(err))
		}
	})

	t.Run("unsupported schemes", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"ftp://example.com/file",
			"file:///etc/passwd",
			"javascript:alert(1)",
			"novel-chapter-without-scheme",
		} {
			_, err := novelgrab.ValidateURL(raw)
			require.Error(t, err, raw)
			assert.Equal(t, novelgrab.EINVALID, novelgrab.ErrorCode(err))
		}
	})

	t.Run("malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := novelgrab.ValidateURL("http://exa mple.com/%zz")
		require.Error(t, err)
		assert.Equal(t, novelgrab.EINVALID, novelgrab.ErrorCode(err))
	})
}

func TestValidateContent(t *testing.T) {
	t.Parallel()

	cfg := novelgrab.DefaultValidatorConfig()
	longClean := "第一章 雪夜\n" + strings.Repeat("雪落无声，山道上只余下行人的足印。他拢了拢身上的旧棉袍，继续赶路。\n", 20)

	t.Run("rejects content under the length floor", func(t *testing.T) {
		t.Parallel()

		v := novelgrab.ValidateContent("Test", "十五个字符的太短内容", "https://example.com/x", cfg)
		assert.False(t, v.Valid)
		assert.Equal(t, novelgrab.EEXTRACT, v.Code)
		assert.Equal(t, "Test", v.Diagnostics.Title)
		assert.Less(t, v.Diagnostics.Length, cfg.MinLength)
	})

	t.Run("accepts clean chapter text on a specialized site", func(t *testing.T) {
		t.Parallel()

		v := novelgrab.ValidateContent("Test", longClean, "https://www.69shu.com/txt/1/2.html", cfg)
		assert.True(t, v.Valid)
	})

	t.Run("rejects navigation phrases on specialized sites even when long", func(t *testing.T) {
		t.Parallel()

		contaminated := longClean + "\n上一章 章节目录 下一章"
		v := novelgrab.ValidateContent("Test", contaminated, "https://www.69shu.com/txt/1/2.html", cfg)
		assert.False(t, v.Valid)
		assert.Equal(t, novelgrab.ECONTAMINATED, v.Code)
		assert.NotEmpty(t, v.Diagnostics.MatchedFlags)
	})

	t.Run("rejects missing chapter heading on specialized sites", func(t *testing.T) {
		t.Parallel()

		noHeading := strings.Repeat("雪落无声，山道上只余下行人的足印。", 20)
		v := novelgrab.ValidateContent("Test", noHeading, "https://www.69shu.com/txt/1/2.html", cfg)
		assert.False(t, v.Valid)
		assert.Equal(t, novelgrab.ECONTAMINATED, v.Code)
	})

	t.Run("rejects high UI keyword density", func(t *testing.T) {
		t.Parallel()

		dense := "第一章 开始\n" + strings.Repeat("目录书签月票推荐票", 10) + "少量正文。"
		v := novelgrab.ValidateContent("Test", dense, "https://www.69shu.com/txt/1/2.html", cfg)
		assert.False(t, v.Valid)
		assert.Equal(t, novelgrab.ECONTAMINATED, v.Code)
		assert.Greater(t, v.Diagnostics.Ratio, cfg.MaxContaminationRatio)
	})

	t.Run("generic sites skip the specialized checks", func(t *testing.T) {
		t.Parallel()

		noHeading := strings.Repeat("A perfectly ordinary paragraph of narrative text. ", 10)
		v := novelgrab.ValidateContent("Test", noHeading, "https://example.com/x", cfg)
		assert.True(t, v.Valid)
	})
}
