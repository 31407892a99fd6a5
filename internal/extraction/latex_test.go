package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const latexResume = `\documentclass[letterpaper,11pt]{article}
\begin{document}

\begin{center}
    \textbf{\Huge \scshape Jane Smith} \\ \vspace{1pt}
    \small 123-456-7890 $|$ \href{mailto:jane@example.com}{\underline{jane@example.com}} $|$
    \href{https://linkedin.com/in/janesmith}{\underline{linkedin.com/in/janesmith}} $|$
    \href{https://github.com/janesmith}{\underline{github.com/janesmith}}
\end{center}

\section{Experience}
  \resumeSubheading
    {Senior Software Engineer}{May 2021 -- Present}
    {Acme Corp}{New York, NY}
    \resumeItem{Led migration of monolith to microservices, cutting deploy time by 70\%}
    \resumeItem{Mentored 4 junior engineers}
  \resumeSubheading
    {Software Engineer}{Jun 2018 -- Apr 2021}
    {Widget Inc}{Boston, MA}
    \resumeItem{Built event ingestion pipeline handling 2M events/day}

\section{Education}
  \resumeSubheading
    {State University}{2014 -- 2018}
    {B.S. in Computer Science}{Boston, MA}

\section{Projects}
  \resumeProjectHeading
    {\textbf{LogSearch} $|$ \emph{Go, Elasticsearch}}{2022}
    \resumeItem{Full-text log search with sub-second latency}

\section{Technical Skills}
 \begin{itemize}[leftmargin=0.15in, label={}]
    \small{\item{
     \textbf{Languages}{: Go, Python, SQL} \\
     \textbf{Tools}{: Docker, Kubernetes, Terraform} \\
    }}
 \end{itemize}

\end{document}
`

func TestIsLaTeX(t *testing.T) {
	assert.True(t, IsLaTeX(`\documentclass{article}`))
	assert.True(t, IsLaTeX(`... \resumeSubheading{A}{B}{C}{D} ...`))
	assert.False(t, IsLaTeX("John Doe\nSoftware Engineer"))
}

func TestLaTeXExtractorStructuralParse(t *testing.T) {
	extractor := NewLaTeXExtractor(nil)
	result, err := extractor.Extract(context.Background(), &types.RawDocument{
		Bytes:       []byte(latexResume),
		ContentType: types.ContentTypeLaTeX,
		Filename:    "resume.tex",
	})
	require.NoError(t, err)
	require.NotNil(t, result.StructuredData)

	record := result.StructuredData
	assert.Equal(t, types.ParseMethodLaTeXStructured, record.ParsingMethod)

	// Exactly two experience entries with split dates and joined bullets.
	require.Len(t, record.Experience, 2)
	first := record.Experience[0]
	assert.Equal(t, "Senior Software Engineer", first.Position)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "2021-05", first.StartDate)
	assert.Equal(t, types.DateCurrent, first.EndDate)
	assert.Equal(t, "Led migration of monolith to microservices, cutting deploy time by 70%\nMentored 4 junior engineers", first.Description)

	second := record.Experience[1]
	assert.Equal(t, "Widget Inc", second.Company)
	assert.Equal(t, "2018-06", second.StartDate)
	assert.Equal(t, "2021-04", second.EndDate)
	assert.Equal(t, "Built event ingestion pipeline handling 2M events/day", second.Description)

	require.Len(t, record.Education, 1)
	assert.Equal(t, "State University", record.Education[0].School)
	assert.Equal(t, "B.S. in Computer Science", record.Education[0].Degree)
	assert.Equal(t, "2014", record.Education[0].StartDate)
	assert.Equal(t, "2018", record.Education[0].EndDate)

	require.Len(t, record.Projects, 1)
	assert.Equal(t, "LogSearch", record.Projects[0].Name)
	assert.Equal(t, []string{"Go", "Elasticsearch"}, record.Projects[0].Technologies)

	require.Contains(t, record.Skills, "Languages")
	assert.Equal(t, []string{"Go", "Python", "SQL"}, record.Skills["Languages"])
	assert.Equal(t, []string{"Docker", "Kubernetes", "Terraform"}, record.Skills["Tools"])
}

func TestLaTeXExtractorContact(t *testing.T) {
	extractor := NewLaTeXExtractor(nil)
	result, err := extractor.Extract(context.Background(), &types.RawDocument{
		Bytes:    []byte(latexResume),
		Filename: "resume.tex",
	})
	require.NoError(t, err)
	require.NotNil(t, result.StructuredData)

	contact := result.StructuredData.ContactInfo
	require.NotNil(t, contact)
	assert.Equal(t, "Jane Smith", contact.Name)
	assert.Equal(t, "jane@example.com", contact.Email)
	assert.Equal(t, "https://linkedin.com/in/janesmith", contact.LinkedIn)
	assert.Equal(t, "https://github.com/janesmith", contact.GitHub)
}

func TestLaTeXExtractorHyperlinks(t *testing.T) {
	extractor := NewLaTeXExtractor(nil)
	result, err := extractor.Extract(context.Background(), &types.RawDocument{
		Bytes:    []byte(latexResume),
		Filename: "resume.tex",
	})
	require.NoError(t, err)

	uris := make([]string, 0, len(result.Hyperlinks))
	for _, l := range result.Hyperlinks {
		uris = append(uris, l.URI)
	}
	assert.Contains(t, uris, "mailto:jane@example.com")
	assert.Contains(t, uris, "https://github.com/janesmith")
}

func TestLaTeXExtractorPlainTextFallback(t *testing.T) {
	// No resume macros: structural parse yields nothing, but the stripped
	// plain text must still come back.
	source := `\documentclass{article}
\begin{document}
John Doe is a software engineer with ten years of experience.
\end{document}`

	extractor := NewLaTeXExtractor(nil)
	result, err := extractor.Extract(context.Background(), &types.RawDocument{
		Bytes:    []byte(source),
		Filename: "resume.tex",
	})
	require.NoError(t, err)
	assert.Nil(t, result.StructuredData)
	assert.Contains(t, result.Text, "John Doe is a software engineer")
}

func TestLaTeXExtractorRejectsNonLaTeX(t *testing.T) {
	extractor := NewLaTeXExtractor(nil)
	_, err := extractor.Extract(context.Background(), &types.RawDocument{
		Bytes:    []byte("just some plain text"),
		Filename: "resume.tex",
	})
	var exErr *Error
	require.ErrorAs(t, err, &exErr)
}
