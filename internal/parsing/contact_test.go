package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContactInfo(t *testing.T) {
	text := `Jane Smith
jane.smith@example.com | (555) 123-4567
Seattle, WA
https://www.linkedin.com/in/janesmith
github.com/janesmith
https://janesmith.dev
`

	contact := ExtractContactInfo(text)
	require.NotNil(t, contact)

	assert.Equal(t, "Jane Smith", contact.Name)
	assert.Equal(t, "jane.smith@example.com", contact.Email)
	assert.Equal(t, "(555) 123-4567", contact.Phone)
	assert.Equal(t, "Seattle, WA", contact.Location)
	assert.Equal(t, "https://www.linkedin.com/in/janesmith", contact.LinkedIn)
	assert.Equal(t, "https://github.com/janesmith", contact.GitHub)
	assert.Equal(t, "https://janesmith.dev", contact.Portfolio)
}

func TestExtractContactInfo_InternationalPhone(t *testing.T) {
	contact := ExtractContactInfo("Reach me at +44 20 7946 0958 anytime")
	require.NotNil(t, contact)
	assert.Contains(t, contact.Phone, "+44")
}

func TestExtractContactInfo_Empty(t *testing.T) {
	assert.Nil(t, ExtractContactInfo("no identifiable details in this text"))
}

func TestExtractContactInfo_NameRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "two capitalized words",
			text: "Jane Smith\nsomething else",
			want: "Jane Smith",
		},
		{
			name: "name with middle initial",
			text: "Jane Q. Smith\njane@example.com",
			want: "Jane Q. Smith",
		},
		{
			name: "line with digits rejected",
			text: "Jane Smith 2024\njane@example.com",
			want: "",
		},
		{
			name: "lowercase line rejected",
			text: "jane smith\njane@example.com",
			want: "",
		},
		{
			name: "name beyond first five lines ignored",
			text: "a\nb\nc\nd\ne\nJane Smith\njane@example.com",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := ExtractContactInfo(tt.text)
			require.NotNil(t, contact)
			assert.Equal(t, tt.want, contact.Name)
		})
	}
}
