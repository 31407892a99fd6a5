package extraction

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/dates"
	"github.com/jonathan/resume-analyzer/internal/textutil"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// latexMarkers identify LaTeX content, including the resume macro dialect
// used by the common one-page templates.
var latexMarkers = []string{
	`\documentclass`,
	`\begin{document}`,
	`\resumeSubheading`,
	`\resumeItem`,
	`\resumeProjectHeading`,
}

var (
	commentPattern   = regexp.MustCompile(`(?m)(^|[^\\])%.*$`)
	sectionPattern   = regexp.MustCompile(`\\section\*?\s*`)
	hrefPattern      = regexp.MustCompile(`\\href\s*`)
	emailPattern     = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern     = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	hugeNamePattern  = regexp.MustCompile(`\\(?:Huge|LARGE|huge)\b`)
	latexCmdPattern  = regexp.MustCompile(`\\[a-zA-Z]+\*?(?:\[[^\]]*\])?\{([^{}]*)\}`)
	bareCmdPattern   = regexp.MustCompile(`\\[a-zA-Z]+\*?(?:\[[^\]]*\])?`)
	skillLinePattern = regexp.MustCompile(`\\textbf\{([^{}]+)\}\s*\{?\s*:?\s*([^\\}]+)`)
)

// IsLaTeX reports whether the text contains LaTeX markers.
func IsLaTeX(text string) bool {
	for _, marker := range latexMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// LaTeXExtractor parses LaTeX resume sources structurally through a fixed set
// of resume macros, bypassing free-text parsing entirely when macros match.
type LaTeXExtractor struct {
	logger *zap.Logger
}

// NewLaTeXExtractor creates a LaTeX extractor.
func NewLaTeXExtractor(logger *zap.Logger) *LaTeXExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LaTeXExtractor{logger: logger}
}

// Extract parses LaTeX source. The structural parse recovers contact info,
// experience, education, projects, and skills directly from resume macros;
// a macro-stripped plain-text rendering is always produced as the fallback
// representation.
func (e *LaTeXExtractor) Extract(_ context.Context, doc *types.RawDocument) (*types.ExtractionResult, error) {
	source := string(doc.Bytes)
	if strings.TrimSpace(source) == "" {
		return nil, &Error{Filename: doc.Filename, Message: "empty LaTeX document"}
	}
	if !IsLaTeX(source) {
		return nil, &Error{Filename: doc.Filename, Message: "no LaTeX markers found in document"}
	}

	source = stripComments(source)
	plainText := textutil.Normalize(stripMacros(source))
	links := extractHrefs(source)

	record := e.parseStructure(source, links)
	if record != nil {
		record.ParsedText = plainText
		e.logger.Debug("latex structural parse succeeded",
			zap.String("filename", doc.Filename),
			zap.Int("experience", len(record.Experience)),
			zap.Int("education", len(record.Education)),
			zap.Int("projects", len(record.Projects)))
	}

	return &types.ExtractionResult{
		Text:           plainText,
		Method:         types.ExtractionLaTeX,
		Hyperlinks:     links,
		RawLaTeX:       source,
		StructuredData: record,
	}, nil
}

// parseStructure walks \section blocks and their resume macros. Returns nil
// when nothing structural matched, which sends the caller down the free-text
// path instead.
func (e *LaTeXExtractor) parseStructure(source string, links []types.Hyperlink) *types.ParsedRecord {
	record := &types.ParsedRecord{
		ContactInfo:   extractLaTeXContact(source, links),
		Skills:        map[string][]string{},
		ParsingMethod: types.ParseMethodLaTeXStructured,
		LayoutType:    types.LayoutSingleColumn,
		ParsedAt:      time.Now().UTC(),
	}

	matched := false
	for _, sec := range splitSections(source) {
		name := strings.ToLower(sec.name)
		switch {
		case strings.Contains(name, "experience") || strings.Contains(name, "employment") || strings.Contains(name, "work"):
			record.Experience = append(record.Experience, parseSubheadings(sec.body)...)
		case strings.Contains(name, "education"):
			record.Education = append(record.Education, parseEducation(sec.body)...)
		case strings.Contains(name, "project"):
			record.Projects = append(record.Projects, parseProjects(sec.body)...)
		case strings.Contains(name, "skill"):
			for category, items := range parseSkillGroups(sec.body) {
				record.Skills[category] = items
			}
		case strings.Contains(name, "summary") || strings.Contains(name, "objective"):
			record.ProfessionalSummary = textutil.Normalize(stripMacros(sec.body))
		}
	}

	if len(record.Experience) > 0 || len(record.Education) > 0 || len(record.Projects) > 0 || len(record.Skills) > 0 {
		matched = true
	}
	if len(record.Skills) == 0 {
		record.Skills = nil
	}
	if !matched {
		return nil
	}
	return record
}

// latexSection is one \section block and its body.
type latexSection struct {
	name string
	body string
}

// splitSections cuts the source at \section boundaries.
func splitSections(source string) []latexSection {
	locs := sectionPattern.FindAllStringIndex(source, -1)
	sections := make([]latexSection, 0, len(locs))
	for i, loc := range locs {
		name, rest := readBracedArg(source[loc[1]:])
		if name == "" {
			continue
		}
		end := len(source)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		bodyStart := len(source) - len(rest)
		if bodyStart > end {
			bodyStart = end
		}
		sections = append(sections, latexSection{
			name: stripInline(name),
			body: source[bodyStart:end],
		})
	}
	return sections
}

// parseSubheadings extracts experience entries from \resumeSubheading blocks.
// Argument order follows the standard template: {title}{date}{org}{location}.
// All \resumeItem bullets between two subheadings belong to the preceding
// entry, concatenated with newlines into one description.
func parseSubheadings(body string) []types.Experience {
	var entries []types.Experience
	for _, block := range macroBlocks(body, `\resumeSubheading`) {
		if len(block.args) < 4 {
			continue
		}
		start, end := dates.SplitRange(stripInline(block.args[1]))
		entries = append(entries, types.Experience{
			Position:    stripInline(block.args[0]),
			StartDate:   start,
			EndDate:     end,
			Company:     stripInline(block.args[2]),
			Location:    stripInline(block.args[3]),
			Description: strings.Join(block.items, "\n"),
		})
	}
	return entries
}

// parseEducation extracts education entries from \resumeSubheading blocks,
// where the title argument is the school and the org argument is the degree.
func parseEducation(body string) []types.Education {
	var entries []types.Education
	for _, block := range macroBlocks(body, `\resumeSubheading`) {
		if len(block.args) < 4 {
			continue
		}
		start, end := dates.SplitRange(stripInline(block.args[1]))
		entries = append(entries, types.Education{
			School:    stripInline(block.args[0]),
			StartDate: start,
			EndDate:   end,
			Degree:    stripInline(block.args[2]),
			Location:  stripInline(block.args[3]),
		})
	}
	return entries
}

// parseProjects extracts project entries from \resumeProjectHeading blocks.
// The heading argument conventionally reads "\textbf{Name} | \emph{Tech}".
func parseProjects(body string) []types.Project {
	var entries []types.Project
	for _, block := range macroBlocks(body, `\resumeProjectHeading`) {
		if len(block.args) < 1 {
			continue
		}
		heading := stripInline(block.args[0])
		name, tech := heading, ""
		if idx := strings.Index(heading, "|"); idx >= 0 {
			name = strings.TrimSpace(heading[:idx])
			tech = strings.TrimSpace(heading[idx+1:])
		}
		project := types.Project{
			Name:        name,
			Description: strings.Join(block.items, "\n"),
		}
		if tech != "" {
			for _, item := range strings.Split(tech, ",") {
				if item = strings.TrimSpace(item); item != "" {
					project.Technologies = append(project.Technologies, item)
				}
			}
		}
		if len(block.args) >= 2 {
			project.StartDate, project.EndDate = dates.SplitRange(stripInline(block.args[1]))
		}
		entries = append(entries, project)
	}
	return entries
}

// parseSkillGroups reads "\textbf{Category}{: a, b, c}" lines.
func parseSkillGroups(body string) map[string][]string {
	groups := make(map[string][]string)
	for _, m := range skillLinePattern.FindAllStringSubmatch(body, -1) {
		category := strings.TrimSpace(stripInline(m[1]))
		if category == "" {
			continue
		}
		var items []string
		for _, item := range strings.Split(m[2], ",") {
			item = strings.TrimSpace(stripInline(item))
			item = strings.Trim(item, ":;. ")
			if item != "" {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			groups[category] = items
		}
	}
	return groups
}

// macroBlock is one structural macro occurrence, its brace arguments, and
// the \resumeItem bullets that follow it before the next occurrence.
type macroBlock struct {
	args  []string
	items []string
}

// macroBlocks finds every occurrence of the named macro in the body,
// collecting its arguments and trailing \resumeItem bullets.
func macroBlocks(body, macro string) []macroBlock {
	var blocks []macroBlock
	offsets := indexAll(body, macro)
	for i, off := range offsets {
		rest := body[off+len(macro):]
		var args []string
		for {
			arg, next := readBracedArg(rest)
			if next == rest {
				break
			}
			args = append(args, arg)
			rest = next
			if len(args) >= 4 {
				break
			}
		}

		end := len(body)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		segment := body[off:end]

		var items []string
		for _, itemOff := range indexAll(segment, `\resumeItem`) {
			item, _ := readBracedArg(segment[itemOff+len(`\resumeItem`):])
			if item = strings.TrimSpace(stripInline(item)); item != "" {
				items = append(items, item)
			}
		}

		blocks = append(blocks, macroBlock{args: args, items: items})
	}
	return blocks
}

// extractHrefs collects \href{url}{text} pairs.
func extractHrefs(source string) []types.Hyperlink {
	var links []types.Hyperlink
	seen := make(map[string]bool)
	for _, loc := range hrefPattern.FindAllStringIndex(source, -1) {
		url, rest := readBracedArg(source[loc[1]:])
		text, _ := readBracedArg(rest)
		url = strings.TrimSpace(url)
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		links = append(links, types.Hyperlink{URI: url, Text: strings.TrimSpace(stripInline(text))})
	}
	return links
}

// extractLaTeXContact recovers contact info from the preamble and hyperlinks.
func extractLaTeXContact(source string, links []types.Hyperlink) *types.ContactInfo {
	contact := &types.ContactInfo{}

	if email := emailPattern.FindString(source); email != "" {
		contact.Email = strings.TrimPrefix(email, "mailto:")
	}

	// Name renders through a large-font command in the header block.
	if loc := hugeNamePattern.FindStringIndex(source); loc != nil {
		line := source[loc[1]:]
		if idx := strings.IndexAny(line, "}\n"); idx > 0 {
			if name := strings.TrimSpace(stripInline(line[:idx])); name != "" {
				contact.Name = name
			}
		}
	}

	for _, link := range links {
		uri := strings.ToLower(link.URI)
		switch {
		case strings.HasPrefix(uri, "mailto:"):
			if contact.Email == "" {
				contact.Email = strings.TrimPrefix(link.URI, "mailto:")
			}
		case strings.HasPrefix(uri, "tel:"):
			if contact.Phone == "" {
				contact.Phone = strings.TrimPrefix(link.URI, "tel:")
			}
		case strings.Contains(uri, "linkedin.com"):
			if contact.LinkedIn == "" {
				contact.LinkedIn = link.URI
			}
		case strings.Contains(uri, "github.com"):
			if contact.GitHub == "" {
				contact.GitHub = link.URI
			}
		default:
			if contact.Portfolio == "" && strings.HasPrefix(uri, "http") {
				contact.Portfolio = link.URI
			}
		}
	}

	if contact.Phone == "" {
		// Search only the header region so page numbers do not match.
		header := source
		if idx := sectionPattern.FindStringIndex(source); idx != nil {
			header = source[:idx[0]]
		}
		if phone := phonePattern.FindString(header); phone != "" {
			contact.Phone = strings.TrimSpace(phone)
		}
	}

	if contact.IsEmpty() {
		return nil
	}
	return contact
}

// readBracedArg reads one balanced {...} group from the start of s, skipping
// leading whitespace. Returns the group content and the remainder; when s
// does not start with a group it returns ("", s) unchanged.
func readBracedArg(s string) (string, string) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	if i >= len(s) || s[i] != '{' {
		return "", s
	}
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[i+1 : j], s[j+1:]
			}
		case '\\':
			j++ // skip escaped character
		}
	}
	return "", s
}

// indexAll returns the offsets of every occurrence of needle in s.
func indexAll(s, needle string) []int {
	var offsets []int
	off := 0
	for {
		idx := strings.Index(s[off:], needle)
		if idx < 0 {
			return offsets
		}
		offsets = append(offsets, off+idx)
		off += idx + len(needle)
	}
}

// stripComments removes LaTeX comments while keeping escaped percent signs.
func stripComments(source string) string {
	return commentPattern.ReplaceAllString(source, "$1")
}

// stripInline removes inline formatting commands from a macro argument,
// keeping their braced content.
func stripInline(s string) string {
	for i := 0; i < 5; i++ {
		next := latexCmdPattern.ReplaceAllString(s, "$1")
		if next == s {
			break
		}
		s = next
	}
	s = bareCmdPattern.ReplaceAllString(s, "")
	s = strings.NewReplacer("{", "", "}", "", "~", " ", `\&`, "&", `\%`, "%", `\$`, "$", "$", "").Replace(s)
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

// stripMacros renders LaTeX source as plain text: bullets become the
// canonical bullet glyph, section names become header lines, all other
// commands reduce to their content.
func stripMacros(source string) string {
	var sb strings.Builder
	rest := source

	// Promote section names to their own lines before command stripping.
	for {
		loc := sectionPattern.FindStringIndex(rest)
		if loc == nil {
			sb.WriteString(rest)
			break
		}
		sb.WriteString(rest[:loc[0]])
		name, after := readBracedArg(rest[loc[1]:])
		sb.WriteString("\n\n" + stripInline(name) + "\n")
		rest = after
	}

	text := sb.String()
	text = strings.ReplaceAll(text, `\resumeItem`, "\n"+textutil.Bullet+" ")
	text = strings.ReplaceAll(text, `\item`, "\n"+textutil.Bullet+" ")
	text = strings.ReplaceAll(text, `\\`, "\n")

	// Reduce remaining commands to their braced content, then drop leftovers.
	for i := 0; i < 6; i++ {
		next := latexCmdPattern.ReplaceAllString(text, " $1 ")
		if next == text {
			break
		}
		text = next
	}
	text = bareCmdPattern.ReplaceAllString(text, " ")
	text = strings.NewReplacer("{", " ", "}", " ", "~", " ", "$", "").Replace(text)
	return text
}
