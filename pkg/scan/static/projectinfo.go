package static

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// packageJSON is the slice of package.json the detector cares about.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// jsFrameworks maps a marker dependency to the framework name, checked in
// order (next wins over react, etc).
var jsFrameworks = []struct {
	dep       string
	framework string
}{
	{"next", "nextjs"},
	{"express", "express"},
	{"react", "react"},
	{"vue", "vue"},
	{"@angular/core", "angular"},
	{"svelte", "svelte"},
	{"fastify", "fastify"},
	{"hono", "hono"},
}

var requirementSeparators = []string{"==", ">=", "<=", "~=", "!="}

var extensionLanguages = map[string]string{
	".py": "python", ".js": "javascript", ".ts": "typescript",
	".go": "go", ".rs": "rust", ".rb": "ruby", ".php": "php", ".java": "java",
}

// DetectProjectInfo inspects project manifests for the language, framework,
// and declared dependencies. When no manifest identifies the language, the
// most common file extension decides.
func DetectProjectInfo(files []models.SourceFile) models.ProjectInfo {
	info := models.ProjectInfo{Dependencies: make(map[string]string)}

	for _, f := range files {
		switch {
		case isManifest(f.Path, "package.json"):
			parsePackageJSON(f.Content, &info)
		case isManifest(f.Path, "requirements.txt"):
			parseRequirements(f.Content, &info)
		case isManifest(f.Path, "pyproject.toml"):
			if info.Language == "" {
				info.Language = "python"
			}
			parsePyproject(f.Content, &info)
		case isManifest(f.Path, "go.mod"):
			info.Language = "go"
			info.Framework = "go"
		case isManifest(f.Path, "Cargo.toml"):
			info.Language = "rust"
		case isManifest(f.Path, ".gitignore"):
			info.HasGitignore = true
			info.GitignoreEntries = gitignoreEntries(f.Content)
		}
	}

	if info.Language == "" {
		info.Language = dominantLanguage(files)
	}
	return info
}

func isManifest(path, name string) bool {
	return path == name || strings.HasSuffix(path, "/"+name)
}

func parsePackageJSON(content string, info *models.ProjectInfo) {
	var pkg packageJSON
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return
	}
	info.Language = "javascript"
	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name, ver := range pkg.Dependencies {
		deps[name] = ver
		info.Dependencies[name] = ver
	}
	for name, ver := range pkg.DevDependencies {
		deps[name] = ver
		info.Dependencies[name] = ver
	}
	for _, fw := range jsFrameworks {
		if _, ok := deps[fw.dep]; ok {
			info.Framework = fw.framework
			break
		}
	}
}

func parseRequirements(content string, info *models.ProjectInfo) {
	info.Language = "python"
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pinned := false
		for _, sep := range requirementSeparators {
			if name, ver, ok := strings.Cut(line, sep); ok {
				info.Dependencies[strings.TrimSpace(name)] = strings.TrimSpace(ver)
				pinned = true
				break
			}
		}
		if !pinned {
			info.Dependencies[line] = "*"
		}
	}

	switch {
	case hasDep(info.Dependencies, "flask", "Flask"):
		info.Framework = "flask"
	case hasDep(info.Dependencies, "django", "Django"):
		info.Framework = "django"
	case hasDep(info.Dependencies, "fastapi"):
		info.Framework = "fastapi"
	}
}

func hasDep(deps map[string]string, names ...string) bool {
	for _, n := range names {
		if _, ok := deps[n]; ok {
			return true
		}
	}
	return false
}

// parsePyproject scrapes versioned key = "value" pairs. It is deliberately
// loose; pyproject dependency tables vary too much for strict parsing here.
func parsePyproject(content string, info *models.ProjectInfo) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "[") || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.Trim(strings.TrimSpace(key), `"`)
		val = strings.Trim(strings.TrimSpace(val), `"'`)
		if strings.ContainsAny(val, "0123456789.><=~^") {
			info.Dependencies[key] = val
		}
	}
}

func gitignoreEntries(content string) []string {
	var entries []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			entries = append(entries, line)
		}
	}
	return entries
}

func dominantLanguage(files []models.SourceFile) string {
	counts := make(map[string]int)
	for _, f := range files {
		counts[filepath.Ext(f.Path)]++
	}
	top, topCount := "", 0
	for ext, n := range counts {
		if n > topCount {
			top, topCount = ext, n
		}
	}
	if top == "" {
		return ""
	}
	if lang, ok := extensionLanguages[top]; ok {
		return lang
	}
	return "unknown"
}
