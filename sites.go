package novelgrab

import (
	"net/url"
	"strings"
)

// SiteProfile describes a web-fiction host with bespoke extraction
// selectors tuned to its markup. The table is fixed configuration;
// adding a site means adding an entry here.
type SiteProfile struct {
	// Name identifies the site family in logs and diagnostics.
	Name string

	// Hosts lists registrable domains served by this profile.
	// Matching is by suffix, so subdomains (www., m.) are covered.
	Hosts []string

	// TitleSelectors are tried in order after the generic title cascade.
	TitleSelectors []string

	// ContentSelectors are tried in priority order by the specialized
	// extraction stage.
	ContentSelectors []string

	// GBK marks hosts that serve GB-family bytes without declaring a
	// charset. The encoding detector uses this as a domain heuristic.
	GBK bool
}

// KnownSites is the fixed table of specialized web-fiction sites.
var KnownSites = []SiteProfile{
	{
		Name:  "69shu",
		Hosts: []string{"69shu.com", "69shux.com", "69shuba.com", "69xinshu.com"},
		TitleSelectors: []string{
			".booknav2 h1",
			".bookname h1",
			"h1.hide720",
		},
		ContentSelectors: []string{
			".txtnav",
			"#txtright .txtnav",
			"#content",
			".yd_text2",
			".novel_content",
		},
		GBK: true,
	},
}

// gbkHosts lists additional hosts known to serve GBK without a charset
// declaration, beyond the specialized-site table.
var gbkHosts = []string{
	"23us.com",
	"x23us.com",
	"b5200.net",
}

// SiteForHost returns the specialized-site profile matching the host,
// or nil if the host is not a known specialized site.
func SiteForHost(host string) *SiteProfile {
	host = normalizeHost(host)
	if host == "" {
		return nil
	}
	for i := range KnownSites {
		for _, h := range KnownSites[i].Hosts {
			if hostMatches(host, h) {
				return &KnownSites[i]
			}
		}
	}
	return nil
}

// SiteForURL is SiteForHost applied to the URL's host component.
// Unparsable URLs return nil.
func SiteForURL(rawURL string) *SiteProfile {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return SiteForHost(u.Hostname())
}

// IsGBKHost reports whether the host belongs to the known Chinese
// web-fiction hosts that default to GBK.
func IsGBKHost(host string) bool {
	host = normalizeHost(host)
	if host == "" {
		return false
	}
	if site := SiteForHost(host); site != nil && site.GBK {
		return true
	}
	for _, h := range gbkHosts {
		if hostMatches(host, h) {
			return true
		}
	}
	return false
}

func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}

func hostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
