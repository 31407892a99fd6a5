package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestContentTypeForExt(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".pdf", types.ContentTypePDF},
		{".PDF", types.ContentTypePDF},
		{".docx", types.ContentTypeDOCX},
		{".doc", types.ContentTypeDOC},
		{".tex", types.ContentTypeLaTeX},
		{".latex", types.ContentTypeLaTeX},
		{".txt", types.ContentTypePlainText},
		{".md", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, contentTypeForExt(tt.ext))
		})
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith\njane@example.com"), 0644))

	doc, err := readDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, types.ContentTypePlainText, doc.ContentType)
	assert.Contains(t, string(doc.Bytes), "Jane Smith")
}

func TestReadDocument_NotFound(t *testing.T) {
	_, err := readDocument(filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Error(t, err)
}

func TestListResumeFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.docx", "notes.md", "c.tex"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.pdf"), 0755))

	files, err := listResumeFiles(dir)

	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "a.docx", filepath.Base(files[0]))
	assert.Equal(t, "b.pdf", filepath.Base(files[1]))
	assert.Equal(t, "c.tex", filepath.Base(files[2]))
}

func TestListResumeFiles_MissingDir(t *testing.T) {
	_, err := listResumeFiles(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestWriteBatchReport(t *testing.T) {
	dir := t.TempDir()
	report := &types.ScoringReport{TotalScore: 72.5, Rating: types.RatingGood}

	require.NoError(t, writeBatchReport(dir, "resume.pdf", report))

	data, err := os.ReadFile(filepath.Join(dir, "resume.report.json"))
	require.NoError(t, err)

	var decoded types.ScoringReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 72.5, decoded.TotalScore)
}

func TestLoadJobDescription_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Backend engineer. Go and Kubernetes.  \n"), 0644))

	text, err := loadJobDescription(context.Background(), config.Config{Job: path}, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "Backend engineer. Go and Kubernetes.", text)
}

func TestLoadJobDescription_None(t *testing.T) {
	text, err := loadJobDescription(context.Background(), config.Config{}, zap.NewNop())

	require.NoError(t, err)
	assert.Empty(t, text)
}
