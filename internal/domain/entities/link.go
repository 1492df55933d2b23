package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultBaseURL is the forge that links are resolved against unless configured otherwise.
const DefaultBaseURL = "https://src.fedoraproject.org"

const patchSuffix = ".patch"

// ParsedLink is the result of resolving a forge URL.
type ParsedLink struct {
	PackageName string
	PatchURL    string
}

// LinkResolver recognizes commit and pull-request views of a single forge.
type LinkResolver struct {
	patterns []*regexp.Regexp
}

// NewLinkResolver builds the commit and pull-request patterns for baseURL.
// An empty baseURL falls back to DefaultBaseURL.
func NewLinkResolver(baseURL string) *LinkResolver {
	base := strings.TrimSuffix(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	quoted := regexp.QuoteMeta(base)

	return &LinkResolver{
		patterns: []*regexp.Regexp{
			// <base>/<namespace>/<repo>/c/<hash>
			regexp.MustCompile(fmt.Sprintf(`^%s/\S+/([^/\s]+)/c/([0-9a-f]+)`, quoted)),
			// <base>/<namespace>/<repo>/pull-request/<id>
			regexp.MustCompile(fmt.Sprintf(`^%s/\S+/([^/\s]+)/pull-request/\d+`, quoted)),
		},
	}
}

// ParseLink returns the package name and the raw patch URL for a forge link.
// Only the leading part of the link has to match, anything after the hash or
// pull-request number (query strings, extra segments) is dropped.
func (r *LinkResolver) ParseLink(link string) (ParsedLink, error) {
	for _, pattern := range r.patterns {
		if match := pattern.FindStringSubmatch(link); match != nil {
			return ParsedLink{
				PackageName: match[1],
				PatchURL:    match[0] + patchSuffix,
			}, nil
		}
	}
	return ParsedLink{}, &UnrecognizedLinkError{Link: link}
}
