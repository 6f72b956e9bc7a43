package novelgrab

import (
	"regexp"
	"strings"
)

// cleanupRule is one (pattern, replacement) pair of the cleanup cascade.
// Rules are applied in declaration order; the whole cascade is pure and
// idempotent, so re-cleaning already-clean text is a no-op.
type cleanupRule struct {
	re          *regexp.Regexp
	replacement string
}

// cleanupRules strips reading-UI chrome that leaks into extracted text:
// chapter navigation, reading controls, author/date bylines, site
// footers, and ad phrases. Order matters: line-level removals run
// before inline ones so inline rules see stable input.
var cleanupRules = []cleanupRule{
	// Prior/next chapter navigation lines.
	{regexp.MustCompile(`(?m)^[^\n]*(上一章|下一章|上一页|下一页|返回目录|返回书页|章节目录|回到顶部)[^\n]*$`), ""},
	// Reading controls and bookmark widgets.
	{regexp.MustCompile(`(?m)^[^\n]*(加入书签|加入书架|投推荐票|推荐票|月票|打赏|夜间模式|护眼模式|字体大小|报错|朗读)[^\n]*$`), ""},
	// Author and update-date bylines.
	{regexp.MustCompile(`(?m)^\s*(作者[:：][^\n]*|更新时间[:：][^\n]*|\d{4}-\d{1,2}-\d{1,2}[^\n]*字数[^\n]*)$`), ""},
	// Site footers and branding.
	{regexp.MustCompile(`(?m)^[^\n]*(69书吧|笔趣阁|顶点小说|全本小说网|本站网址|记住网址|备用网址)[^\n]*$`), ""},
	// Ad and promo phrases.
	{regexp.MustCompile(`(?m)^[^\n]*(天才一秒记住本站地址|手机用户请浏览|无弹窗免费阅读|最快更新|章节错误[,，]?点此举报|请收藏本站)[^\n]*$`), ""},
	// Inline leftovers from the widget rows above.
	{regexp.MustCompile(`[(（]本章完[)）]`), ""},
	{regexp.MustCompile(`(?i)(xs74w|biqu[0-9a-z]*\.(?:com|net|info))`), ""},
}

// contaminationPatterns detect residual UI-phrase fragments in text that
// survived cleanup. Any match marks the extraction as contaminated.
var contaminationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`上一章.{0,8}(目录|章节).{0,8}下一章`),
	regexp.MustCompile(`(加入书签|加入书架)`),
	regexp.MustCompile(`(夜间模式|护眼模式|字体大小)`),
	regexp.MustCompile(`(笔趣阁|69书吧|顶点小说)`),
	regexp.MustCompile(`章节错误[,，]?点此举报`),
}

// chapterHeadingPatterns match chapter headings, arabic and CJK-numeral
// variants. 两/〇 appear in colloquial numbering.
var chapterHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`第\s*[0-9０-９]+\s*[章节回卷]`),
	regexp.MustCompile(`第[一二三四五六七八九十百千万两零〇]+[章节回卷]`),
	regexp.MustCompile(`(?i)chapter\s*\d+`),
}

// uiKeywords are scored against content length by the contamination
// ratio check. Each occurrence contributes the keyword's rune length.
var uiKeywords = []string{
	"上一章", "下一章", "目录", "书签", "书架",
	"推荐票", "月票", "打赏", "夜间模式", "护眼",
	"字体", "举报", "笔趣阁", "最快更新",
}

var whitespaceRuns = regexp.MustCompile(`[ \t\x{3000}]+`)
var blankLineRuns = regexp.MustCompile(`\n{3,}`)

// CleanText applies the fixed cleanup cascade to extracted text.
// The cascade is idempotent: CleanText(CleanText(s)) == CleanText(s).
func CleanText(s string) string {
	for _, rule := range cleanupRules {
		s = rule.re.ReplaceAllString(s, rule.replacement)
	}
	return s
}

// CollapseWhitespace normalizes horizontal whitespace runs to single
// spaces, collapses blank-line runs, and trims the result.
func CollapseWhitespace(s string) string {
	s = whitespaceRuns.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = blankLineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// IsContaminated reports whether text contains residual reading-UI
// fragments, and returns the patterns that matched.
func IsContaminated(s string) (bool, []string) {
	var matched []string
	for _, re := range contaminationPatterns {
		if re.MatchString(s) {
			matched = append(matched, re.String())
		}
	}
	return len(matched) > 0, matched
}

// HasChapterHeading reports whether text contains a recognizable
// chapter heading.
func HasChapterHeading(s string) bool {
	for _, re := range chapterHeadingPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// FindChapterHeading returns the index of the first chapter heading in
// text, or -1 if none is present.
func FindChapterHeading(s string) int {
	best := -1
	for _, re := range chapterHeadingPatterns {
		if loc := re.FindStringIndex(s); loc != nil {
			if best == -1 || loc[0] < best {
				best = loc[0]
			}
		}
	}
	return best
}

// ChapterHeadingPatterns returns the chapter-heading regex family in
// declaration order. Callers must not mutate the returned slice.
func ChapterHeadingPatterns() []*regexp.Regexp {
	return chapterHeadingPatterns
}

// UIKeywordRatio returns the fraction of content runes occupied by
// known reading-UI keywords.
func UIKeywordRatio(s string) float64 {
	total := len([]rune(s))
	if total == 0 {
		return 0
	}
	matched := 0
	for _, kw := range uiKeywords {
		matched += strings.Count(s, kw) * len([]rune(kw))
	}
	return float64(matched) / float64(total)
}

// controlLine matches reader-control rows for the trailing-strip pass.
var controlLine = regexp.MustCompile(`(上一章|下一章|上一页|下一页|返回目录|章节目录|加入书签|加入书架|推荐票|月票|夜间模式|护眼模式|字体大小|报错)`)

// StripTrailingControls drops trailing lines that are reader-control
// rows. This is the minimal cleanup used by best-effort extraction:
// narrative lines above the control block are left untouched.
func StripTrailingControls(s string) string {
	lines := strings.Split(strings.TrimRight(s, " \n"), "\n")
	for len(lines) > 0 {
		last := strings.TrimSpace(lines[len(lines)-1])
		if last == "" || controlLine.MatchString(last) {
			lines = lines[:len(lines)-1]
			continue
		}
		break
	}
	return strings.Join(lines, "\n")
}

// WordCount counts whitespace-separated tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
