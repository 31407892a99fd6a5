package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bulleted entries",
			text: "• Go\n• Python\n• SQL",
			want: []string{"Go", "Python", "SQL"},
		},
		{
			name: "bulleted comma list",
			text: "• Go, Python, SQL",
			want: []string{"Go", "Python", "SQL"},
		},
		{
			name: "dash and star bullets",
			text: "- Kubernetes\n* Terraform",
			want: []string{"Kubernetes", "Terraform"},
		},
		{
			name: "comma separated line without bullets",
			text: "Go, Python, SQL, Redis",
			want: []string{"Go", "Python", "SQL", "Redis"},
		},
		{
			name: "pipe separated line",
			text: "Go | Python | SQL",
			want: []string{"Go", "Python", "SQL"},
		},
		{
			name: "prose with commas is not a skill list",
			text: "I built large systems in Go, which taught me a great deal about concurrency and robustness, among other lessons",
			want: nil,
		},
		{
			name: "case insensitive dedupe keeps first",
			text: "• Go, go, GO, Python",
			want: []string{"Go", "Python"},
		},
		{
			name: "length bounds",
			text: "• x, Go, " + strings.Repeat("a", 60),
			want: []string{"Go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSkills(tt.text))
		})
	}
}

func TestExtractSkills_Cap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&sb, "• skill-%02d\n", i)
	}

	got := ExtractSkills(sb.String())
	assert.Len(t, got, maxSkills)
	assert.Equal(t, "skill-00", got[0])
}

func TestNormalizeSkillGroups(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, NormalizeSkillGroups(nil, nil))
	})

	t.Run("flat list goes under skills", func(t *testing.T) {
		got := NormalizeSkillGroups(nil, []string{"Go", "Python", "go"})
		require.Contains(t, got, "skills")
		assert.Equal(t, []string{"Go", "Python"}, got["skills"])
	})

	t.Run("categories preserved", func(t *testing.T) {
		got := NormalizeSkillGroups(map[string][]string{
			"Languages": {"Go", "Python"},
			"Databases": {"PostgreSQL"},
		}, nil)
		assert.Equal(t, []string{"Go", "Python"}, got["Languages"])
		assert.Equal(t, []string{"PostgreSQL"}, got["Databases"])
	})

	t.Run("empty category name becomes skills", func(t *testing.T) {
		got := NormalizeSkillGroups(map[string][]string{"  ": {"Go"}}, nil)
		assert.Equal(t, []string{"Go"}, got["skills"])
	})

	t.Run("flat merges into existing skills bucket", func(t *testing.T) {
		got := NormalizeSkillGroups(map[string][]string{"skills": {"Go"}}, []string{"Go", "Python"})
		assert.Equal(t, []string{"Go", "Python"}, got["skills"])
	})

	t.Run("empty groups dropped", func(t *testing.T) {
		assert.Nil(t, NormalizeSkillGroups(map[string][]string{"Languages": {"x"}}, nil))
	})
}
