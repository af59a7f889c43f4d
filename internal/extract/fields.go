package extract

import (
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPatternCacheSize bounds the number of compiled field patterns kept by
// DefaultFields.
const DefaultPatternCacheSize = 128

type patternKind string

const (
	stringPattern     patternKind = "string"
	identifierPattern patternKind = "ident"
	arrayPattern      patternKind = "array"
)

var identifierRun = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Fields looks up `name: value` fields inside a span of source text. Compiled
// patterns are cached per field name; a Fields is safe for concurrent use.
type Fields struct {
	patterns *lru.Cache[string, *regexp.Regexp]
}

// NewFields creates a field extractor caching up to size compiled patterns.
func NewFields(size int) *Fields {
	if size <= 0 {
		size = DefaultPatternCacheSize
	}
	cache, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &Fields{patterns: cache}
}

// DefaultFields is the shared extractor used by the entity builders.
var DefaultFields = NewFields(DefaultPatternCacheSize)

func (f *Fields) pattern(kind patternKind, name string) *regexp.Regexp {
	key := string(kind) + "|" + name
	if re, ok := f.patterns.Get(key); ok {
		return re
	}

	quoted := regexp.QuoteMeta(name)
	var expr string
	switch kind {
	case stringPattern:
		expr = `\b` + quoted + "\\s*:\\s*['\"`]([^'\"`]+)['\"`]"
	case identifierPattern:
		expr = `\b` + quoted + `\s*:\s*([A-Za-z0-9_]+)`
	case arrayPattern:
		expr = `\b` + quoted + `\s*:\s*\[`
	}

	re := regexp.MustCompile(expr)
	f.patterns.Add(key, re)
	return re
}

// String returns the quoted value of the first `name: 'value'` in text.
func (f *Fields) String(text, name string) (string, bool) {
	m := f.pattern(stringPattern, name).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Identifier returns the bare identifier of the first `name: Value` in text.
func (f *Fields) Identifier(text, name string) (string, bool) {
	m := f.pattern(identifierPattern, name).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ArrayInterior locates the first `name: [` in text and returns what lies between
// the bracket and its matching close, together with the offset of the interior.
// An array that never closes is reported as absent.
func (f *Fields) ArrayInterior(text, name string) (string, int, bool) {
	loc := f.pattern(arrayPattern, name).FindStringIndex(text)
	if loc == nil {
		return "", 0, false
	}
	open := loc[1] - 1
	end := MatchingClose(text, open)
	if end < 0 {
		return "", 0, false
	}
	return text[open+1 : end], open + 1, true
}

// List returns the identifiers referenced by the array field name. Each top-level
// item contributes its first identifier; items without one are skipped. An empty
// array gives an empty, non-nil slice. ok is false only when the field is absent.
func (f *Fields) List(text, name string) ([]string, bool) {
	interior, _, ok := f.ArrayInterior(text, name)
	if !ok {
		return nil, false
	}

	items := SplitTopLevel(interior, ',')
	names := make([]string, 0, len(items))
	for _, item := range items {
		if id, ok := FirstIdentifier(item); ok {
			names = append(names, id)
		}
	}
	return names, true
}

// FirstIdentifier returns the first run of letters, digits and underscores in item.
func FirstIdentifier(item string) (string, bool) {
	id := identifierRun.FindString(item)
	return id, id != ""
}
