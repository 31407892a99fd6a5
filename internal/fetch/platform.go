package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies a job board whose page structure we know.
type Platform string

// Recognized job boards.
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

// platformHosts maps host substrings to their board. Order matters only for
// readability; the substrings do not overlap.
var platformHosts = []struct {
	host     string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
}

// boardProfile carries the selectors that isolate a board's posting text.
type boardProfile struct {
	content []string
	noise   []string
}

// boardProfiles holds per-board selector knowledge. Content selectors run
// most specific first; noise selectors are applied on top of commonNoise.
var boardProfiles = map[Platform]boardProfile{
	PlatformGreenhouse: {
		content: []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		},
		noise: []string{
			".application--wrapper",
			".voluntary-self-id",
			".voluntary-self-id-wrapper",
			"#usa_self_id_section",
			".post-apply",
		},
	},
	PlatformLever: {
		content: []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		},
		noise: []string{
			".apply-section",
			".lever-application-form",
			".posting-apply",
		},
	},
	PlatformWorkday: {
		content: []string{
			"[data-automation-id='jobDescription']",
			".WDXK",
			".gwt-HTML",
			".job-description",
		},
		noise: []string{
			"[data-automation-id='applyButton']",
			".application-section",
			".WDAF",
		},
	},
}

// commonNoise removes application forms, EEO/legal boilerplate, share
// widgets, and consent banners on every board.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board hosting a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, entry := range platformHosts {
		if strings.Contains(host, entry.host) {
			return entry.platform
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns the content selectors for a board, falling
// back to the generic job-posting selectors for unknown boards.
func PlatformContentSelectors(platform Platform) []string {
	if profile, ok := boardProfiles[platform]; ok {
		return profile.content
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns the noise selectors for a board on top of
// the common set.
func PlatformNoiseSelectors(platform Platform) []string {
	selectors := append([]string{}, commonNoise...)
	if profile, ok := boardProfiles[platform]; ok {
		selectors = append(selectors, profile.noise...)
	}
	return selectors
}
