package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReinsertSpaces(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lower-upper boundary",
			in:   "SoftwareEngineerAcme",
			want: "Software Engineer Acme",
		},
		{
			name: "letter-year boundary",
			in:   "May2024",
			want: "May 2024",
		},
		{
			name: "digit-letter boundary",
			in:   "2021to2023",
			want: "2021 to 2023",
		},
		{
			name: "repeated whitespace collapses",
			in:   "Go\t\tPython   SQL",
			want: "Go Python SQL",
		},
		{
			name: "already clean text unchanged",
			in:   "Senior Engineer at Acme since 2021",
			want: "Senior Engineer at Acme since 2021",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReinsertSpaces(tt.in))
		})
	}
}

func TestCleanBulletPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"• Led the migration", "Led the migration"},
		{"- Shipped the feature", "Shipped the feature"},
		{"–— mixed dashes", "mixed dashes"},
		{"  * starred", "starred"},
		{"no prefix here", "no prefix here"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanBulletPrefix(tt.in))
		})
	}
}
