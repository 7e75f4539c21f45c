package router

import (
	"fmt"
	"strings"

	"github.com/batonhttp/baton/core/handler"
)

type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segParam
	segWildcard
)

// segment is one matchable unit of a route template.
type segment struct {
	kind segmentKind
	// literal text or param name; unused for wildcards
	value string
}

// Pattern is a parsed route template. Patterns are created at registration
// time and immutable afterwards.
type Pattern struct {
	segments []segment
	wildcard bool
}

// ParsePattern parses a route template into a Pattern. Templates must begin
// with '/', literal and ':name' segments must be non-empty, and a '*'
// wildcard may appear only as the final segment.
func ParsePattern(raw string) (Pattern, error) {
	if raw == "" {
		return Pattern{}, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	if raw[0] != '/' {
		return Pattern{}, fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, raw)
	}

	// A single trailing slash is cosmetic: "/account/" and "/account" are
	// the same route.
	trimmed := strings.TrimSuffix(raw[1:], "/")
	if trimmed == "" {
		return Pattern{}, nil // root
	}

	parts := strings.Split(trimmed, "/")
	p := Pattern{segments: make([]segment, 0, len(parts))}
	seen := make(map[string]struct{}, len(parts))

	for i, part := range parts {
		switch {
		case part == "":
			return Pattern{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPattern, raw)
		case part == "*":
			if i != len(parts)-1 {
				return Pattern{}, fmt.Errorf("%w: %q", ErrWildcardPosition, raw)
			}
			p.segments = append(p.segments, segment{kind: segWildcard})
			p.wildcard = true
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" {
				return Pattern{}, fmt.Errorf("%w: %q contains an unnamed param", ErrInvalidPattern, raw)
			}
			if _, dup := seen[name]; dup {
				return Pattern{}, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, raw)
			}
			seen[name] = struct{}{}
			p.segments = append(p.segments, segment{kind: segParam, value: name})
		default:
			p.segments = append(p.segments, segment{kind: segLiteral, value: part})
		}
	}

	return p, nil
}

// String returns the canonical form of the pattern.
func (p Pattern) String() string {
	if len(p.segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		switch seg.kind {
		case segParam:
			b.WriteByte(':')
			b.WriteString(seg.value)
		case segWildcard:
			b.WriteByte('*')
		default:
			b.WriteString(seg.value)
		}
	}
	return b.String()
}

// Match compares a concrete request path against the pattern segment by
// segment. Literals match exactly (case-sensitive), a param binds any single
// non-empty segment, and a trailing wildcard binds whatever remains (zero or
// more segments joined by '/', the empty string when nothing remains) under
// handler.WildcardKey. Matching is O(segment count); no backtracking.
func (p Pattern) Match(path string) (handler.Params, bool) {
	parts := splitPath(path)

	want := len(p.segments)
	if p.wildcard {
		// The wildcard absorbs any remaining length, including zero.
		if len(parts) < want-1 {
			return nil, false
		}
	} else if len(parts) != want {
		return nil, false
	}

	params := make(handler.Params)
	for i, seg := range p.segments {
		switch seg.kind {
		case segLiteral:
			if parts[i] != seg.value {
				return nil, false
			}
		case segParam:
			if parts[i] == "" {
				return nil, false
			}
			params[seg.value] = parts[i]
		case segWildcard:
			params[handler.WildcardKey] = strings.Join(parts[i:], "/")
		}
	}

	return params, true
}

// literalPrefix returns the number of literal segments before the first
// param or wildcard segment; the primary specificity measure.
func (p Pattern) literalPrefix() int {
	n := 0
	for _, seg := range p.segments {
		if seg.kind != segLiteral {
			break
		}
		n++
	}
	return n
}

// splitPath splits a request path into segments, ignoring a trailing slash.
func splitPath(path string) []string {
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
