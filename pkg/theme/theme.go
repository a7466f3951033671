// Package theme maps semantic names to styles. The built-in theme ships
// embedded; a user theme file (TOML or YAML) under the XDG config dir
// overrides entries by name, so markup and widgets can reference
// "heading" or "error" without hardcoding colors.
package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "embed"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/glint/pkg/errors"
	"github.com/arthur-debert/glint/pkg/logging"
	"github.com/arthur-debert/glint/pkg/style"
)

//go:embed embedded/default.toml
var defaultTheme []byte

// rawBytesProvider implements the koanf provider for embedded bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Theme is an immutable name-to-style table.
type Theme struct {
	styles map[string]style.Style
}

// Default returns the embedded theme with no user overrides.
func Default() (*Theme, error) {
	return load("")
}

// Load returns the embedded theme layered with the user theme file from
// the XDG config dir (theme.toml or theme.yaml), when one exists.
func Load() (*Theme, error) {
	for _, name := range []string{"theme.toml", "theme.yaml"} {
		path := filepath.Join(xdg.ConfigHome, "glint", name)
		if _, err := os.Stat(path); err == nil {
			return load(path)
		}
	}
	return load("")
}

// LoadFile returns the embedded theme layered with an explicit user
// theme file.
func LoadFile(path string) (*Theme, error) {
	return load(path)
}

func load(userPath string) (*Theme, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultTheme}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeLoad, "failed to load built-in theme")
	}

	if userPath != "" {
		parser := parserFor(userPath)
		if err := k.Load(file.Provider(userPath), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to load theme from %s", userPath)
		}
		logger := logging.GetLogger("theme")
		logger.Debug().Str("path", userPath).Msg("user theme loaded")
	}

	specs := k.StringMap("styles")
	styles := make(map[string]style.Style, len(specs))
	for name, spec := range specs {
		st, err := style.Parse(spec)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrThemeLoad, "invalid style for %q", name)
		}
		styles[name] = st
	}
	return &Theme{styles: styles}, nil
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	}
	return toml.Parser()
}

// Get returns the style registered under name.
func (t *Theme) Get(name string) (style.Style, error) {
	st, ok := t.styles[name]
	if !ok {
		return style.Style{}, errors.Newf(errors.ErrThemeNotFound, "no style named %q", name)
	}
	return st, nil
}

// Has reports whether name is registered.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Names returns the registered style names, sorted.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up a markup tag as a theme entry first and falls back
// to parsing it as a style specification, so themes plug straight into
// markup parsing as a Resolver.
func (t *Theme) Resolve(tag string) (style.Style, error) {
	if st, ok := t.styles[tag]; ok {
		return st, nil
	}
	st, err := style.Parse(strings.ReplaceAll(tag, "-", " "))
	if err != nil {
		return style.Style{}, errors.Wrapf(err, errors.ErrMarkupParse, "unknown tag %q", tag)
	}
	return st, nil
}
