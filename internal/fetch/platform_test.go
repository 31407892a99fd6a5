package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{"Greenhouse job board", "https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"Greenhouse boards subdomain", "https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"Lever posting", "https://jobs.lever.co/company/job-id", PlatformLever},
		{"Workday tenant", "https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"Workday root", "https://workday.com/jobs", PlatformWorkday},
		{"Company careers page", "https://example.com/jobs", PlatformUnknown},
		{"LinkedIn", "https://linkedin.com/jobs/123", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	greenhouse := PlatformContentSelectors(PlatformGreenhouse)
	assert.Contains(t, greenhouse, ".job__description.body")

	lever := PlatformContentSelectors(PlatformLever)
	assert.Contains(t, lever, ".posting-page")

	// Boards without a profile fall back to the generic selector list.
	unknown := PlatformContentSelectors(PlatformUnknown)
	assert.Equal(t, JobPostingSelectors(), unknown)
}

func TestPlatformNoiseSelectors(t *testing.T) {
	greenhouse := PlatformNoiseSelectors(PlatformGreenhouse)
	assert.Contains(t, greenhouse, "form")
	assert.Contains(t, greenhouse, ".application--wrapper")
	assert.Contains(t, greenhouse, ".voluntary-self-id")

	unknown := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, unknown, "#application-form")
	assert.Contains(t, unknown, ".cookie-banner")
}

func TestPlatformNoiseSelectors_CopiesCommonList(t *testing.T) {
	first := PlatformNoiseSelectors(PlatformUnknown)
	first[0] = "mutated"
	second := PlatformNoiseSelectors(PlatformUnknown)
	assert.NotEqual(t, "mutated", second[0])
}
