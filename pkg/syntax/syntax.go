// Package syntax highlights source code with chroma lexers and renders
// it as styled lines. It also provides the pluggable Highlighter the
// console options carry for renderables that emit plain code.
package syntax

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/arthur-debert/glint/pkg/cells"
	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/logging"
	"github.com/arthur-debert/glint/pkg/measure"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "monokai"

var (
	lexerCacheMu sync.RWMutex
	lexerCache   = make(map[string]chroma.Lexer)
)

// lookupLexer resolves a language name to a coalesced lexer, trying a
// file-extension match as fallback. Returns nil when unknown.
func lookupLexer(lang string) chroma.Lexer {
	if lang == "" {
		return nil
	}
	lexerCacheMu.RLock()
	lexer := lexerCache[lang]
	lexerCacheMu.RUnlock()
	if lexer != nil {
		return lexer
	}

	lexer = lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Match("file." + lang)
	}
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)
	lexerCacheMu.Lock()
	lexerCache[lang] = lexer
	lexerCacheMu.Unlock()
	return lexer
}

// tokenStyle converts one chroma style entry into a Style.
func tokenStyle(cs *chroma.Style, t chroma.TokenType) style.Style {
	entry := cs.Get(t)
	st := style.New()
	if entry.Colour.IsSet() {
		if c, err := style.Hex(entry.Colour.String()); err == nil {
			st = st.Foreground(c)
		}
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// Code is a renderable block of highlighted source.
type Code struct {
	source string
	lang   string
	theme  string
}

// New returns a code block for the given language. An empty or unknown
// language renders the source unstyled.
func New(source, lang string) *Code {
	return &Code{source: source, lang: lang, theme: DefaultTheme}
}

// Theme selects the chroma style by name.
func (c *Code) Theme(name string) *Code {
	c.theme = name
	return c
}

// GlintRender tokenizes the source and emits styled segments, one
// newline marker per source line. Lines are never re-wrapped; overlong
// lines crop.
func (c *Code) GlintRender(cons *console.Console, opts console.Options) ([]console.Item, error) {
	lines, err := cons.RenderLines(codeBody{code: c}, opts.WithNoWrap(true).WithOverflow(segment.OverflowCrop))
	if err != nil {
		return nil, err
	}
	items := make([]console.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, console.Segments(append(line.Segments, segment.NewLine)...))
	}
	return items, nil
}

// codeBody emits the raw highlighted segments; the outer Code renders
// it under no-wrap crop options.
type codeBody struct {
	code *Code
}

func (b codeBody) GlintRender(_ *console.Console, _ console.Options) ([]console.Item, error) {
	segs := highlight(b.code.source, b.code.lang, b.code.theme)
	return []console.Item{console.Segments(segs...)}, nil
}

// GlintMeasure reports the widest source line for both bounds since
// code lines do not wrap.
func (c *Code) GlintMeasure(_ *console.Console, _ console.Options) (measure.Measurement, error) {
	widest := 0
	for _, line := range strings.Split(c.source, "\n") {
		if w := cells.Width(line); w > widest {
			widest = w
		}
	}
	return measure.New(widest, widest), nil
}

// highlight tokenizes source and returns styled segments with newline
// markers. Unknown languages and tokenizer failures degrade to plain
// segments.
func highlight(source, lang, theme string) []segment.Segment {
	lexer := lookupLexer(lang)
	if lexer == nil {
		return plainSegments(source)
	}
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		logger := logging.GetLogger("syntax")
		logger.Warn().Err(err).Str("lang", lang).Msg("tokenise failed")
		return plainSegments(source)
	}

	cs := styles.Get(theme)
	if cs == nil {
		cs = styles.Fallback
	}

	var segs []segment.Segment
	for _, tok := range iterator.Tokens() {
		if tok.Value == "" {
			continue
		}
		st := tokenStyle(cs, tok.Type)
		segs = append(segs, splitToken(tok.Value, st)...)
	}
	return segs
}

// splitToken breaks a token value at newlines, which chroma tokens may
// contain, into styled segments and newline markers.
func splitToken(value string, st style.Style) []segment.Segment {
	var segs []segment.Segment
	for {
		i := strings.IndexByte(value, '\n')
		if i < 0 {
			break
		}
		if i > 0 {
			segs = append(segs, segment.Styled(value[:i], st))
		}
		segs = append(segs, segment.NewLine)
		value = value[i+1:]
	}
	if value != "" {
		segs = append(segs, segment.Styled(value, st))
	}
	return segs
}

func plainSegments(source string) []segment.Segment {
	return splitToken(source, style.New())
}

// Highlighter adapts a language and theme to the console's highlighter
// hook, styling plain text other renderables emit.
type Highlighter struct {
	Lang  string
	Theme string
}

// Highlight implements console.Highlighter.
func (h Highlighter) Highlight(text string) []segment.Segment {
	theme := h.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	return highlight(text, h.Lang, theme)
}
