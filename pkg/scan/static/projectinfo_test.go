package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vibecheck/vibecheck/pkg/models"
)

func TestDetectProjectInfoPackageJSON(t *testing.T) {
	files := []models.SourceFile{
		{Path: "package.json", Content: `{
			"dependencies": {"next": "14.0.0", "react": "18.2.0"},
			"devDependencies": {"typescript": "5.0.0"}
		}`},
	}
	info := DetectProjectInfo(files)
	assert.Equal(t, "javascript", info.Language)
	assert.Equal(t, "nextjs", info.Framework, "next wins over react")
	assert.Equal(t, "14.0.0", info.Dependencies["next"])
	assert.Equal(t, "5.0.0", info.Dependencies["typescript"])
}

func TestDetectProjectInfoRequirements(t *testing.T) {
	files := []models.SourceFile{
		{Path: "requirements.txt", Content: "flask==2.0.0\n# comment\nrequests>=2.28.0\npyyaml\n"},
	}
	info := DetectProjectInfo(files)
	assert.Equal(t, "python", info.Language)
	assert.Equal(t, "flask", info.Framework)
	assert.Equal(t, "2.0.0", info.Dependencies["flask"])
	assert.Equal(t, "2.28.0", info.Dependencies["requests"])
	assert.Equal(t, "*", info.Dependencies["pyyaml"])
}

func TestDetectProjectInfoGoMod(t *testing.T) {
	files := []models.SourceFile{
		{Path: "go.mod", Content: "module example.com/app\n\ngo 1.22\n"},
	}
	info := DetectProjectInfo(files)
	assert.Equal(t, "go", info.Language)
	assert.Equal(t, "go", info.Framework)
}

func TestDetectProjectInfoGitignore(t *testing.T) {
	files := []models.SourceFile{
		{Path: ".gitignore", Content: "# deps\nnode_modules\n.env\n\ndist/\n"},
	}
	info := DetectProjectInfo(files)
	assert.True(t, info.HasGitignore)
	assert.Equal(t, []string{"node_modules", ".env", "dist/"}, info.GitignoreEntries)
}

func TestDetectProjectInfoExtensionFallback(t *testing.T) {
	files := []models.SourceFile{
		{Path: "a.py", Content: "x = 1"},
		{Path: "b.py", Content: "y = 2"},
		{Path: "c.js", Content: "let z"},
	}
	info := DetectProjectInfo(files)
	assert.Equal(t, "python", info.Language)
}

func TestInterestingFile(t *testing.T) {
	assert.True(t, interestingFile("main.go"))
	assert.True(t, interestingFile("Dockerfile"))
	assert.True(t, interestingFile("app.tsx"))
	assert.False(t, interestingFile("photo.png"))
	assert.False(t, interestingFile("binary.exe"))
}
