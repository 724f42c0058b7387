package rendering

import (
	"bytes"
	"html/template"
	"reflect"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

var protocolPrefix = regexp.MustCompile(`^https?://`)

// Helpers returns the functions available to resume templates. A new map is
// built for every render so no state is shared between renders.
func Helpers() template.FuncMap {
	md := goldmark.New(
		goldmark.WithParser(inlineParser()),
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
	)

	return template.FuncMap{
		"stripProtocol": StripProtocol,
		"join":          Join,
		"eq":            Equal,
		"markdown": func(s string) template.HTML {
			return inlineMarkdown(md, s)
		},
	}
}

// StripProtocol removes a leading http:// or https:// from a URL.
func StripProtocol(url string) string {
	return protocolPrefix.ReplaceAllString(url, "")
}

// Join concatenates items with sep.
func Join(items []string, sep string) string {
	return strings.Join(items, sep)
}

// Equal reports whether a equals any of bs, like the template builtin eq.
// Values of different types are never equal, and non-comparable values
// compare false.
func Equal(a any, bs ...any) bool {
	for _, b := range bs {
		if equalScalar(a, b) {
			return true
		}
	}
	return false
}

func equalScalar(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}

// inlineParser parses every input as a single paragraph of inline markup.
// Block syntax such as "# " or "1. " stays literal text, and parsers
// triggered by '<' (raw HTML, autolinks) are left out so angle brackets are
// escaped as text.
func inlineParser() parser.Parser {
	var inlines []util.PrioritizedValue
	for _, p := range parser.DefaultInlineParsers() {
		if bytes.IndexByte(p.Value.(parser.InlineParser).Trigger(), '<') >= 0 {
			continue
		}
		inlines = append(inlines, p)
	}
	return parser.NewParser(
		parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
		parser.WithInlineParsers(inlines...),
	)
}

// inlineMarkdown renders s and unwraps the single paragraph goldmark puts
// around inline content. Angle brackets in s are escaped, never dropped.
func inlineMarkdown(md goldmark.Markdown, s string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s)) //nolint:gosec // escaped above
	}

	out := strings.TrimSpace(buf.String())
	inner, ok := strings.CutPrefix(out, "<p>")
	if ok {
		inner, ok = strings.CutSuffix(inner, "</p>")
	}
	if ok && !strings.Contains(inner, "<p>") {
		out = inner
	}
	return template.HTML(out) //nolint:gosec // inlineParser has no raw HTML parser; text is escaped
}
