package parsing

import (
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/textutil"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Parser is the deterministic rule-based resume parser. The same input
// always yields the same output; it never performs I/O and never fails.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a rule-based parser.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse runs the regex pipeline: normalize, detect layout, reflow two-column
// text best-effort, detect sections, extract contact info from the header and
// contact sections, and extract skills preferring the skills section over the
// whole document.
func (p *Parser) Parse(text string, metadata map[string]string) *types.ParsedRecord {
	normalized := textutil.Normalize(text)
	layout := DetectLayout(normalized)

	working := normalized
	if layout == types.LayoutTwoColumn {
		working = ReflowTwoColumn(normalized)
	}

	sections := DetectSections(working)

	contactSource := sections[HeaderSection]
	if contactSection, ok := sections["contact"]; ok {
		contactSource += "\n" + contactSection
	}
	if contactSource == "" {
		contactSource = working
	}
	contact := ExtractContactInfo(contactSource)

	skillsSource, hasSkillsSection := sections["skills"]
	if !hasSkillsSection {
		skillsSource = working
	}
	flatSkills := ExtractSkills(skillsSource)

	method := types.ParseMethodFallbackRegex
	if len(sections) <= 1 && contact == nil {
		// Nothing recognizable: the record carries text only.
		method = types.ParseMethodFallbackMinimal
	}

	record := &types.ParsedRecord{
		ParsedText:          working,
		LayoutType:          layout,
		Sections:            sections,
		ContactInfo:         contact,
		ProfessionalSummary: sections["summary"],
		Skills:              NormalizeSkillGroups(nil, flatSkills),
		ParsingMethod:       method,
		ParsedAt:            time.Now().UTC(),
	}

	p.logger.Debug("regex parse complete",
		zap.String("layout", string(layout)),
		zap.Int("sections", len(sections)),
		zap.Int("skills", len(flatSkills)),
		zap.String("method", string(method)),
		zap.Any("metadata_keys", metadataKeys(metadata)))

	return record
}

func metadataKeys(metadata map[string]string) []string {
	if len(metadata) == 0 {
		return nil
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	return keys
}
