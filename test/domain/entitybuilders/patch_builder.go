//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/ferrypick/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const defaultPatchName = "python3.9"

// PatchBuilder helps create test patches with a fluent interface. By default
// it produces a minimal git format-patch mail touching NAME.spec.
type PatchBuilder struct {
	*testkit.BaseBuilder
	fileName     string
	originalName string
	extraLines   []string
}

// NewPatchBuilder creates a new patch builder with sensible defaults.
func NewPatchBuilder() *PatchBuilder {
	return &PatchBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		fileName:     defaultPatchName + ".spec",
		originalName: defaultPatchName,
	}
}

// WithFileName sets the file touched by the patch.
func (b *PatchBuilder) WithFileName(fileName string) *PatchBuilder {
	b.fileName = fileName
	return b
}

// WithOriginalName sets the package the patch comes from, empty for local files.
func (b *PatchBuilder) WithOriginalName(name string) *PatchBuilder {
	b.originalName = name
	return b
}

// WithLine adds a context line to the hunk.
func (b *PatchBuilder) WithLine(line string) *PatchBuilder {
	b.extraLines = append(b.extraLines, line)
	return b
}

// Build creates the patch (satisfies testkit.Builder interface).
func (b *PatchBuilder) Build() interface{} {
	return b.BuildPatch()
}

// BuildPatch creates the patch with a concrete return type.
func (b *PatchBuilder) BuildPatch() entities.Patch {
	return entities.Patch{
		Content:      []byte(b.BuildContent()),
		OriginalName: b.originalName,
	}
}

// BuildContent renders only the patch text.
func (b *PatchBuilder) BuildContent() string {
	lines := []string{
		"From a0928446 Mon Sep 17 00:00:00 2001",
		"From: Packager <packager@example.com>",
		"Subject: [PATCH] Update to 3.9.1",
		"",
		"---",
		" " + b.fileName + " | 2 +-",
		" 1 file changed, 1 insertion(+), 1 deletion(-)",
		"",
		"diff --git a/" + b.fileName + " b/" + b.fileName,
		"index 1111111..2222222 100644",
		"--- a/" + b.fileName,
		"+++ b/" + b.fileName,
		"@@ -1,2 +1,2 @@",
		"-Version: 3.9.0",
		"+Version: 3.9.1",
	}
	for _, line := range b.extraLines {
		lines = append(lines, " "+line)
	}
	return strings.Join(lines, "\n") + "\n"
}

// Reset clears the builder state, allowing it to be reused.
func (b *PatchBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.fileName = defaultPatchName + ".spec"
	b.originalName = defaultPatchName
	b.extraLines = nil
	return b
}

// Clone creates a deep copy of the PatchBuilder.
func (b *PatchBuilder) Clone() testkit.Builder {
	return &PatchBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		fileName:     b.fileName,
		originalName: b.originalName,
		extraLines:   append([]string(nil), b.extraLines...),
	}
}
