// Package static implements the lightweight assessment pipeline: source
// acquisition, project detection, and the four code analyzers plus the
// optional LLM contextual pass.
package static

import (
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/pkg/services"
)

// cloneTimeout bounds the shallow clone of the target repository.
const cloneTimeout = 60 * time.Second

// maxFileSize skips files larger than this from the in-memory snapshot.
const maxFileSize = 100_000

var codeExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".java": true, ".go": true, ".rs": true, ".rb": true, ".php": true,
	".html": true, ".vue": true, ".svelte": true, ".sql": true,
	".sh": true, ".bash": true,
}

var configExtensions = map[string]bool{
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".ini": true,
	".cfg": true, ".env": true, ".env.example": true, ".env.local": true,
	".env.development": true, ".env.production": true,
}

var configFilenames = map[string]bool{
	"Dockerfile": true, "docker-compose.yml": true, "docker-compose.yaml": true,
	".gitignore": true, ".dockerignore": true, "Makefile": true, "Procfile": true,
	"nginx.conf": true, "next.config.js": true, "next.config.mjs": true,
	"vite.config.ts": true, "vite.config.js": true, "webpack.config.js": true,
	"tsconfig.json": true, "pyproject.toml": true, "setup.py": true, "setup.cfg": true,
	"requirements.txt": true, "package.json": true, "package-lock.json": true,
	"Cargo.toml": true, "go.mod": true, "go.sum": true, "Gemfile": true,
}

var skipDirs = map[string]bool{
	".git": true, "node_modules": true, "__pycache__": true, ".next": true,
	".nuxt": true, "dist": true, "build": true, "venv": true, ".venv": true,
	"vendor": true, "target": true,
}

// CloneAndReadRepo shallow-clones a public repository and snapshots its
// interesting files into memory. The clone lives under cloneDir/assessmentID
// and is removed by CleanupClone.
func CloneAndReadRepo(ctx context.Context, cloneDir, repoURL, assessmentID string) ([]models.SourceFile, error) {
	dest := filepath.Join(cloneDir, assessmentID)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, services.CloneFailed(repoURL, err.Error())
	}

	cloneCtx, cancel := context.WithTimeout(ctx, cloneTimeout)
	defer cancel()

	cmd := exec.CommandContext(cloneCtx, "git", "clone", "--depth", "1", repoURL, dest)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if cloneCtx.Err() == context.DeadlineExceeded {
			return nil, services.CloneFailed(repoURL, "Clone timed out after 60 seconds")
		}
		return nil, services.CloneFailed(repoURL, strings.TrimSpace(string(out)))
	}

	return readTree(dest)
}

// CleanupClone removes the working copy for an assessment. Errors are
// ignored; a leftover directory is reclaimed on the next run.
func CleanupClone(cloneDir, assessmentID string) {
	_ = os.RemoveAll(filepath.Join(cloneDir, assessmentID))
}

func readTree(root string) ([]models.SourceFile, error) {
	var files []models.SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !interestingFile(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil || info.Size() > maxFileSize {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		files = append(files, models.SourceFile{
			Path:    filepath.ToSlash(rel),
			Content: string(content),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func interestingFile(name string) bool {
	if configFilenames[name] {
		return true
	}
	ext := filepath.Ext(name)
	return codeExtensions[ext] || configExtensions[ext]
}
