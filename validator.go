package novelgrab

import (
	"net/url"
	"strings"
)

// ValidateURL sanitizes a raw URL string and constrains it to absolute
// http/https URLs. Returns the trimmed canonical URL. No I/O.
func ValidateURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", Errorf(EINVALID, "URL is required")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL format: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "unsupported protocol %q: only http and https are allowed", u.Scheme)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "invalid URL format: missing host")
	}

	return trimmed, nil
}

// ValidatorConfig holds the empirically tuned acceptance thresholds for
// extracted content. The values have no stated derivation; they are
// preserved as configuration rather than reinterpreted.
type ValidatorConfig struct {
	// MinLength is the generic floor below which content is rejected.
	MinLength int

	// MaxContaminationRatio is the tolerated fraction of content runes
	// occupied by reading-UI keywords on specialized sites.
	MaxContaminationRatio float64
}

// DefaultValidatorConfig returns the tuned production thresholds.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		MinLength:             20,
		MaxContaminationRatio: 0.10,
	}
}

// Diagnostics explains a validation verdict.
type Diagnostics struct {
	Title        string   `json:"title"`
	Length       int      `json:"length"`
	MatchedFlags []string `json:"matchedFlags,omitempty"`
	Ratio        float64  `json:"ratio"`
	Suggestion   string   `json:"suggestion,omitempty"`
}

// Verdict is the outcome of content validation. Code is an application
// error code (EEXTRACT or ECONTAMINATED) when Valid is false.
type Verdict struct {
	Valid       bool
	Code        string
	Reason      string
	Diagnostics Diagnostics
}

// ValidateContent rejects too-short or contaminated extractions.
// Specialized-site URLs get the stricter checks: contamination
// patterns, chapter-heading presence, and the UI-keyword ratio cap.
func ValidateContent(title, content, pageURL string, cfg ValidatorConfig) Verdict {
	length := len([]rune(content))
	diag := Diagnostics{Title: title, Length: length}

	if length < cfg.MinLength {
		diag.Suggestion = "the page may be JavaScript-rendered or behind a block page"
		return Verdict{
			Code:        EEXTRACT,
			Reason:      "extracted content too short",
			Diagnostics: diag,
		}
	}

	if SiteForURL(pageURL) != nil {
		diag.Ratio = UIKeywordRatio(content)
		if contaminated, flags := IsContaminated(content); contaminated {
			diag.MatchedFlags = flags
			diag.Suggestion = "reader chrome survived cleanup; the site markup may have changed"
			return Verdict{
				Code:        ECONTAMINATED,
				Reason:      "content contains reading-UI fragments",
				Diagnostics: diag,
			}
		}
		if !HasChapterHeading(content) {
			diag.Suggestion = "no chapter heading found; the extractor may have captured a listing page"
			return Verdict{
				Code:        ECONTAMINATED,
				Reason:      "no chapter heading in content",
				Diagnostics: diag,
			}
		}
		if diag.Ratio > cfg.MaxContaminationRatio {
			diag.Suggestion = "UI keyword density over threshold; check the selector pack"
			return Verdict{
				Code:        ECONTAMINATED,
				Reason:      "UI keyword density over threshold",
				Diagnostics: diag,
			}
		}
	}

	return Verdict{Valid: true, Diagnostics: diag}
}
