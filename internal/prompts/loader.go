// Package prompts embeds the Gemini prompt templates for resume parsing and
// scoring. Each JSON file holds a map of prompt name to template text; the
// templates use {{.Key}} placeholders filled in by Format.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

// Embedded prompt files.
const (
	ParsingFile = "parsing.json"
	ScoringFile = "scoring.json"
)

//go:embed *.json
var promptFS embed.FS

// load parses every embedded prompt file exactly once.
var load = sync.OnceValues(func() (map[string]map[string]string, error) {
	all := make(map[string]map[string]string)
	err := fs.WalkDir(promptFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := promptFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read prompt file %s: %w", path, err)
		}
		entries := make(map[string]string)
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to parse prompt file %s: %w", path, err)
		}
		all[path] = entries
		return nil
	})
	return all, err
})

// Get returns the named prompt template from an embedded file.
func Get(filename, key string) (string, error) {
	all, err := load()
	if err != nil {
		return "", err
	}

	entries, ok := all[filename]
	if !ok {
		return "", fmt.Errorf("no prompt file %q embedded", filename)
	}
	prompt, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts the program cannot run without; a missing
// template is a packaging mistake, not a runtime condition.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with values from data. Unknown
// placeholders are left in place so a missing value is visible in the prompt.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}
