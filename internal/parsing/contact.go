package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phonePatterns cover US and international formats, tried in order.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?[\s.-]?\d{3,4}[\s.-]?\d{3,4}`),
		regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
	}

	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`)
	urlPattern      = regexp.MustCompile(`(?i)https?://[^\s<>()\[\]{}"']+`)
	locationPattern = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:[\s-][A-Z][a-zA-Z]+)*),\s*([A-Z]{2})\b`)
	socialHostsSkip = []string{"linkedin.com", "github.com", "twitter.com", "x.com", "facebook.com", "instagram.com", "mailto:"}
)

// ExtractContactInfo runs independent regexes for email, phone, LinkedIn and
// GitHub handles, generic URLs, and a City, ST location over the given text.
// Missing fields stay empty; the function never fails.
func ExtractContactInfo(text string) *types.ContactInfo {
	contact := &types.ContactInfo{}

	if email := emailPattern.FindString(text); email != "" {
		contact.Email = email
	}
	for _, p := range phonePatterns {
		if phone := p.FindString(text); phone != "" {
			contact.Phone = strings.TrimSpace(phone)
			break
		}
	}
	if link := linkedinPattern.FindString(text); link != "" {
		contact.LinkedIn = ensureScheme(strings.TrimRight(link, "/"))
	}
	if link := githubPattern.FindString(text); link != "" {
		contact.GitHub = ensureScheme(strings.TrimRight(link, "/"))
	}
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		contact.Location = m[1] + ", " + m[2]
	}

	// The first non-social URL is treated as the portfolio.
	for _, raw := range urlPattern.FindAllString(text, -1) {
		if isSocialURL(raw) {
			continue
		}
		contact.Portfolio = strings.TrimRight(raw, "/.")
		break
	}

	contact.Name = extractName(text)

	if contact.IsEmpty() {
		return nil
	}
	return contact
}

// extractName guesses the candidate name from the first few lines: a short
// line of capitalized words with no digits, at-signs, or URLs.
var namePattern = regexp.MustCompile(`^[A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){1,3}$`)

func extractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, "@/:0123456789") {
			continue
		}
		if namePattern.MatchString(line) {
			return line
		}
	}
	return ""
}

func isSocialURL(raw string) bool {
	lower := strings.ToLower(raw)
	for _, host := range socialHostsSkip {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

func ensureScheme(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "https://" + link
}
