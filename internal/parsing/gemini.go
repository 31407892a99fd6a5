package parsing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/dates"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/textutil"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const rawPrefixLen = 200

// GeminiParser extracts a structured resume via the Gemini API. It makes
// exactly one model call per Parse; retries and fallback belong to the
// hybrid layer.
type GeminiParser struct {
	client llm.Client
	logger *zap.Logger
}

// NewGeminiParser creates a Gemini-backed parser around an injected client.
func NewGeminiParser(client llm.Client, logger *zap.Logger) *GeminiParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiParser{client: client, logger: logger}
}

// geminiResponse mirrors the JSON shape the parsing prompt demands.
type geminiResponse struct {
	ContactInfo *contactPayload  `json:"contact_info"`
	Sections    []sectionPayload `json:"sections"`
}

type contactPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// sectionPayload is polymorphic on Type: items carry typed entries for
// experience, education, projects and certifications; groups carry skills;
// entries (or plain-string items) carry everything list-shaped.
type sectionPayload struct {
	Type    string              `json:"type"`
	Title   string              `json:"title"`
	Content string              `json:"content"`
	Items   json.RawMessage     `json:"items"`
	Groups  []skillGroupPayload `json:"groups"`
	Entries []string            `json:"entries"`
}

type skillGroupPayload struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Parse sends the resume text to Gemini and converts the response into a
// ParsedRecord. API failures surface as *APICallError; unusable responses
// (truncation, malformed or schema-violating JSON) surface as *ParseError.
// A truncated response is never partially trusted.
func (g *GeminiParser) Parse(ctx context.Context, text string, hyperlinks []types.Hyperlink) (*types.ParsedRecord, error) {
	prepared := ReinsertSpaces(textutil.Normalize(text))

	prompt := prompts.Format(prompts.MustGet(prompts.ParsingFile, "parse-resume"), map[string]string{
		"Hyperlinks": formatHyperlinks(hyperlinks),
		"ResumeText": prepared,
	})

	result, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "resume parsing request failed", Cause: err}
	}

	g.logger.Debug("gemini parse response received",
		zap.String("model", result.Model),
		zap.Int("tokens", result.TotalTokens()),
		zap.Int("response_len", len(result.Text)))

	if llm.IsLikelyTruncated(result.Text) {
		return nil, &ParseError{
			Message:   "response does not terminate a JSON document",
			Truncated: true,
			RawPrefix: rawPrefix(result.Text),
		}
	}

	if err := schemas.ValidateParsedRecord(result.Text); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			return nil, &ParseError{Message: "response is not valid JSON", RawPrefix: rawPrefix(result.Text), Cause: err}
		}
		return nil, &ParseError{Message: "response violates the expected shape", RawPrefix: rawPrefix(result.Text), Cause: err}
	}

	var resp geminiResponse
	if err := json.Unmarshal([]byte(result.Text), &resp); err != nil {
		return nil, &ParseError{Message: "response could not be decoded", RawPrefix: rawPrefix(result.Text), Cause: err}
	}

	record := g.buildRecord(&resp)
	record.ParsedText = prepared
	record.ParsingMethod = types.ParseMethodGemini
	record.ParsedAt = time.Now().UTC()
	return record, nil
}

func (g *GeminiParser) buildRecord(resp *geminiResponse) *types.ParsedRecord {
	record := &types.ParsedRecord{
		Skills:         map[string][]string{},
		CustomSections: map[string][]string{},
	}

	if c := resp.ContactInfo; c != nil {
		contact := &types.ContactInfo{
			Name:      strings.TrimSpace(c.Name),
			Email:     strings.TrimSpace(c.Email),
			Phone:     strings.TrimSpace(c.Phone),
			Location:  strings.TrimSpace(c.Location),
			LinkedIn:  strings.TrimSpace(c.LinkedIn),
			GitHub:    strings.TrimSpace(c.GitHub),
			Portfolio: strings.TrimSpace(c.Portfolio),
		}
		if !contact.IsEmpty() {
			record.ContactInfo = contact
		}
	}

	groups := map[string][]string{}
	for i := range resp.Sections {
		sec := &resp.Sections[i]
		switch sec.Type {
		case "summary":
			if record.ProfessionalSummary == "" {
				record.ProfessionalSummary = cleanText(sec.Content)
			}
		case "experience":
			record.Experience = append(record.Experience, decodeExperience(sec.Items, g.logger)...)
		case "education":
			record.Education = append(record.Education, decodeEducation(sec.Items, g.logger)...)
		case "projects":
			record.Projects = append(record.Projects, decodeProjects(sec.Items, g.logger)...)
		case "skills":
			for _, grp := range sec.Groups {
				cat := strings.TrimSpace(grp.Category)
				groups[cat] = append(groups[cat], grp.Items...)
			}
		case "certifications":
			record.Certifications = append(record.Certifications, decodeCertifications(sec.Items, g.logger)...)
		case "achievements":
			record.Achievements = append(record.Achievements, stringEntries(sec)...)
		case "awards":
			record.Awards = append(record.Awards, stringEntries(sec)...)
		case "languages":
			record.Languages = append(record.Languages, stringEntries(sec)...)
		default:
			key := strings.TrimSpace(sec.Title)
			if key == "" {
				key = sec.Type
			}
			if key == "" || key == "custom" {
				continue
			}
			entries := stringEntries(sec)
			if len(entries) == 0 && sec.Content != "" {
				entries = []string{cleanText(sec.Content)}
			}
			if len(entries) > 0 {
				record.CustomSections[key] = append(record.CustomSections[key], entries...)
			}
		}
	}

	record.Skills = NormalizeSkillGroups(groups, nil)

	for i := range record.Experience {
		e := &record.Experience[i]
		e.StartDate, e.EndDate = normalizeDatePair(e.StartDate, e.EndDate)
		e.Description = cleanText(e.Description)
	}
	for i := range record.Education {
		e := &record.Education[i]
		e.StartDate, e.EndDate = normalizeDatePair(e.StartDate, e.EndDate)
	}
	for i := range record.Projects {
		p := &record.Projects[i]
		p.StartDate, p.EndDate = normalizeDatePair(p.StartDate, p.EndDate)
		p.Description = cleanText(p.Description)
	}
	for i := range record.Certifications {
		record.Certifications[i].Date = dates.Normalize(record.Certifications[i].Date)
	}

	if len(record.Skills) == 0 {
		record.Skills = nil
	}
	if len(record.CustomSections) == 0 {
		record.CustomSections = nil
	}
	return record
}

func decodeExperience(raw json.RawMessage, logger *zap.Logger) []types.Experience {
	var items []types.Experience
	if err := decodeItems(raw, &items, logger, "experience"); err != nil {
		return nil
	}
	return dropEmpty(items, func(e types.Experience) bool {
		return e.Company == "" && e.Position == "" && e.Description == ""
	})
}

func decodeEducation(raw json.RawMessage, logger *zap.Logger) []types.Education {
	var items []types.Education
	if err := decodeItems(raw, &items, logger, "education"); err != nil {
		return nil
	}
	return dropEmpty(items, func(e types.Education) bool {
		return e.School == "" && e.Degree == ""
	})
}

func decodeProjects(raw json.RawMessage, logger *zap.Logger) []types.Project {
	var items []types.Project
	if err := decodeItems(raw, &items, logger, "projects"); err != nil {
		return nil
	}
	return dropEmpty(items, func(p types.Project) bool {
		return p.Name == "" && p.Description == ""
	})
}

func decodeCertifications(raw json.RawMessage, logger *zap.Logger) []types.Certification {
	var items []types.Certification
	if err := decodeItems(raw, &items, logger, "certifications"); err != nil {
		return nil
	}
	return dropEmpty(items, func(c types.Certification) bool {
		return c.Name == ""
	})
}

// decodeItems tolerates a single malformed section rather than discarding the
// whole response over it.
func decodeItems(raw json.RawMessage, dst any, logger *zap.Logger, sectionType string) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("skipping undecodable section items",
			zap.String("section", sectionType),
			zap.Error(err))
		return err
	}
	return nil
}

func dropEmpty[T any](items []T, isEmpty func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !isEmpty(item) {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// stringEntries extracts a flat string list from a list-shaped section,
// accepting either "entries" or plain-string "items".
func stringEntries(sec *sectionPayload) []string {
	src := sec.Entries
	if len(src) == 0 && len(sec.Items) > 0 {
		var items []string
		if err := json.Unmarshal(sec.Items, &items); err == nil {
			src = items
		}
	}
	var out []string
	for _, s := range src {
		s = cleanText(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// cleanText strips bullet glyph prefixes from every line and drops lines
// that end up empty.
func cleanText(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = CleanBulletPrefix(strings.TrimSpace(line))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// normalizeDatePair canonicalizes both dates, splitting a range that the
// model left in the start field.
func normalizeDatePair(start, end string) (string, string) {
	if strings.TrimSpace(end) == "" {
		if s, e := dates.SplitRange(start); e != "" {
			return s, e
		}
	}
	return dates.Normalize(start), dates.Normalize(end)
}

func formatHyperlinks(links []types.Hyperlink) string {
	if len(links) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for _, l := range links {
		if l.Text != "" {
			fmt.Fprintf(&sb, "- %s (%s)\n", l.URI, l.Text)
		} else {
			fmt.Fprintf(&sb, "- %s\n", l.URI)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func rawPrefix(s string) string {
	return logger.TruncateForLog(s, rawPrefixLen)
}
