package interfaces

import (
	"path/filepath"
	"strings"
)

// Language describes a language the formatter offers by default.
type Language struct {
	ID    string `json:"value"`
	Label string `json:"label"`
	Ext   string `json:"ext"`
}

// Languages is the list of languages offered to callers, in display order.
var Languages = []Language{
	{ID: "javascript", Label: "JavaScript", Ext: ".js"},
	{ID: "typescript", Label: "TypeScript", Ext: ".ts"},
	{ID: "python", Label: "Python", Ext: ".py"},
	{ID: "java", Label: "Java", Ext: ".java"},
	{ID: "cpp", Label: "C++", Ext: ".cpp"},
	{ID: "go", Label: "Go", Ext: ".go"},
	{ID: "rust", Label: "Rust", Ext: ".rs"},
	{ID: "php", Label: "PHP", Ext: ".php"},
	{ID: "ruby", Label: "Ruby", Ext: ".rb"},
	{ID: "swift", Label: "Swift", Ext: ".swift"},
	{ID: "kotlin", Label: "Kotlin", Ext: ".kt"},
}

// extToLanguage maps file extensions to language identifiers.
// It is wider than Languages: any language tag is accepted by the model.
var extToLanguage = map[string]string{
	".js":    "javascript",
	".mjs":   "javascript",
	".cjs":   "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".py":    "python",
	".java":  "java",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".go":    "go",
	".rs":    "rust",
	".php":   "php",
	".rb":    "ruby",
	".swift": "swift",
	".kt":    "kotlin",
	".kts":   "kotlin",
	".sh":    "shell",
	".bash":  "shell",
	".sql":   "sql",
	".json":  "json",
	".yml":   "yaml",
	".yaml":  "yaml",
	".html":  "html",
	".css":   "css",
	".scss":  "scss",
}

// LanguageForPath infers a language identifier from a file path.
// Returns "" when the extension is unknown.
func LanguageForPath(path string) string {
	return extToLanguage[strings.ToLower(filepath.Ext(path))]
}

// ExtensionForLanguage returns the file extension used when saving code in
// the given language, falling back to ".txt".
func ExtensionForLanguage(language string) string {
	for _, l := range Languages {
		if l.ID == language {
			return l.Ext
		}
	}
	return ".txt"
}
