package entities

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// packageNamePattern is the Fedora common character set for package naming.
	packageNamePattern = `[a-zA-Z0-9_.+-]+`

	// pathPrefixPattern matches the "a" and "b" prefixes git puts in front of diff paths.
	pathPrefixPattern = `(a|b)`

	// fileSuffixPattern lists the files named after the package.
	fileSuffixPattern = `\.(spec|rpmlintrc)`
)

// Rewrite replaces originalName with currentName in the "a/<name>.spec",
// "b/<name>.rpmlintrc" style paths of a patch. An empty originalName means the
// source package is unknown, any valid package name is then replaced.
// Every other occurrence of the name is left as is.
func Rewrite(content []byte, originalName, currentName string) []byte {
	if originalName != "" && originalName == currentName {
		return content
	}

	namePattern := packageNamePattern
	if originalName != "" {
		namePattern = regexp.QuoteMeta(originalName)
	}

	pattern := regexp.MustCompile(
		fmt.Sprintf(`(?P<prefix>%s)/%s(?P<suffix>%s)`, pathPrefixPattern, namePattern, fileSuffixPattern),
	)
	replacement := []byte("${prefix}/" + strings.ReplaceAll(currentName, "$", "$$") + "${suffix}")

	return pattern.ReplaceAll(content, replacement)
}
