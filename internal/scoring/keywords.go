// Package scoring turns a parsed resume into a bounded ATS score, through a
// deterministic local engine, a Gemini-backed rubric, or a hybrid of the two
// with a defined fallback contract. Every path produces the same unified
// six-category breakdown with clamped scores.
package scoring

import (
	"regexp"
	"sort"
	"strings"
)

// MaxKeywordScore bounds the keyword analyzer.
const MaxKeywordScore = 30.0

const (
	matchWeight    = 1.5
	categoryWeight = 1.5
)

// keywordTable is the fixed multi-category keyword inventory the analyzer
// matches against. Matching is case-insensitive on word boundaries.
var keywordTable = map[string][]string{
	"languages": {
		"python", "java", "javascript", "typescript", "go", "golang", "rust",
		"c++", "c#", "ruby", "php", "swift", "kotlin", "scala", "sql", "r",
	},
	"web": {
		"react", "angular", "vue", "node", "django", "flask", "spring",
		"rails", "express", "graphql", "rest", "html", "css", "next.js",
	},
	"data": {
		"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
		"spark", "hadoop", "pandas", "numpy", "tensorflow", "pytorch",
		"machine learning", "data analysis", "etl",
	},
	"cloud": {
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
		"jenkins", "ci/cd", "linux", "git", "microservices", "serverless",
	},
	"practices": {
		"agile", "scrum", "tdd", "code review", "unit testing", "debugging",
		"system design", "api design", "performance optimization",
	},
	"soft": {
		"leadership", "communication", "collaboration", "mentoring",
		"problem solving", "project management", "cross-functional",
	},
}

// KeywordResult carries the keyword sub-score and its evidence.
type KeywordResult struct {
	Score         float64
	Matched       []string
	CategoriesHit int
	// Missing holds table keywords present in the job description but
	// absent from the resume. Empty when no job description was given.
	Missing []string
}

// AnalyzeKeywords scores the resume text against the fixed keyword table:
// min(30, 1.5*matches + 1.5*distinct categories hit). With a job description,
// it also reports the table keywords the posting mentions but the resume
// lacks. Empty text scores zero.
func AnalyzeKeywords(text, jobDescription string) KeywordResult {
	var result KeywordResult
	if strings.TrimSpace(text) == "" {
		return result
	}

	lower := strings.ToLower(text)
	for _, category := range sortedCategories() {
		hit := false
		for _, kw := range keywordTable[category] {
			if containsKeyword(lower, kw) {
				result.Matched = append(result.Matched, kw)
				hit = true
			}
		}
		if hit {
			result.CategoriesHit++
		}
	}

	score := matchWeight*float64(len(result.Matched)) + categoryWeight*float64(result.CategoriesHit)
	if score > MaxKeywordScore {
		score = MaxKeywordScore
	}
	result.Score = score

	if jd := strings.ToLower(jobDescription); strings.TrimSpace(jd) != "" {
		for _, category := range sortedCategories() {
			for _, kw := range keywordTable[category] {
				if containsKeyword(jd, kw) && !containsKeyword(lower, kw) {
					result.Missing = append(result.Missing, kw)
				}
			}
		}
	}

	return result
}

// sortedCategories keeps analyzer output deterministic across runs.
func sortedCategories() []string {
	cats := make([]string, 0, len(keywordTable))
	for c := range keywordTable {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// keywordBoundary holds the characters that continue a token. Sentence
// punctuation ('.', ',', '/') is excluded so a keyword at the end of a
// sentence still matches.
var keywordBoundary = regexp.MustCompile(`[a-z0-9+#]`)

// containsKeyword matches kw in lower-cased text on word boundaries, so "go"
// does not match inside "google". Keywords with symbols ("c++", "ci/cd")
// match literally.
func containsKeyword(lower, kw string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		beforeOK := start == 0 || !keywordBoundary.MatchString(string(lower[start-1]))
		afterOK := end == len(lower) || !keywordBoundary.MatchString(string(lower[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}
