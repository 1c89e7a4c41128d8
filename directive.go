package cratepy

import (
	"strings"
	"unicode/utf8"
)

// directivePrefix marks a dependency directive line at the top of the input.
const directivePrefix = "// "

// CollectDeps extracts dependency directives from the raw input bytes.
//
// A directive is a line starting with "// " at the top of the file; its
// content after the prefix is one raw dependency declaration in Cargo.toml
// syntax, taken verbatim. Collection stops at the first line that does not
// carry the prefix, so directives must form a contiguous leading block:
// a blank line or any code ends the scan, and later prefix-lookalike lines
// are ignored.
//
// The returned specs keep their original order and are never deduplicated or
// parsed; cargo is the sole judge of their syntax.
//
// Returns ErrDecode if the input is not valid UTF-8.
func CollectDeps(src []byte) ([]string, error) {
	if !utf8.Valid(src) {
		return nil, ErrDecode
	}

	var deps []string
	for _, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, directivePrefix) {
			break
		}
		deps = append(deps, line[len(directivePrefix):])
	}

	return deps, nil
}
