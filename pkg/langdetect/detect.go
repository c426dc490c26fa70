// Package langdetect guesses the language of fenced code blocks that
// carry no tag, so exported HTML can still pick a highlight style.
// It uses go-enry plus a few cheap pattern checks for the languages
// that dominate chat snippets.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const (
	langGo     = "go"
	langPython = "python"
	langJSON   = "json"
	langYAML   = "yaml"
	langSQL    = "sql"
	langBash   = "bash"
)

// classifierCandidates narrows go-enry's classifier to languages that
// actually show up in chat logs; the full set misclassifies short
// snippets too often.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS",
}

// Detect returns the fence tag for a code snippet, or "" when
// detection is not confident enough. Callers treat "" as "leave the
// block unhighlighted".
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// DetectString adapts Detect to the string-based hook the HTML
// renderer takes.
func DetectString(code string) string {
	return Detect([]byte(code))
}

// detectByPattern handles snippets too short for the classifier but
// carrying an unmistakable marker.
func detectByPattern(trimmed []byte) string {
	text := string(trimmed)

	if bytes.HasPrefix(trimmed, []byte("package ")) ||
		strings.Contains(text, "func main()") {
		return langGo
	}

	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return langPython
	}

	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return langJSON
	}

	upper := strings.ToUpper(text)
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE "} {
		if strings.HasPrefix(upper, kw) {
			return langSQL
		}
	}

	if yamlKeyLines(trimmed) >= 2 {
		return langYAML
	}

	return ""
}

// yamlKeyLines counts lines shaped like top-level YAML keys or list
// items, skipping blanks, comments and anything that looks like code.
func yamlKeyLines(content []byte) int {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
	}
	return count
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
