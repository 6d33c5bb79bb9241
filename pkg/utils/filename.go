package utils

import (
	"net/url"
	"strings"
)

// FileExtension returns the substring after the last dot of name, without
// the dot. A name with no dot yields "". The result keeps its original case;
// callers decide how to compare.
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}

// ContentDispositionFilename URL-encodes a filename for use in an RFC 5987
// Content-Disposition header. Spaces become %20, not +.
func ContentDispositionFilename(name string) string {
	encoded := url.QueryEscape(name)
	return strings.ReplaceAll(encoded, "+", "%20")
}
