package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/glint/pkg/errors"
	"github.com/arthur-debert/glint/pkg/markup"
	"github.com/arthur-debert/glint/pkg/theme"
)

func writeTheme(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultThemeHasCoreNames(t *testing.T) {
	th, err := theme.Default()
	require.NoError(t, err)

	for _, name := range []string{"heading", "error", "success", "code"} {
		assert.True(t, th.Has(name), "missing %q", name)
	}

	st, err := th.Get("error")
	require.NoError(t, err)
	assert.True(t, st.IsBold())
}

func TestUserFileOverridesDefaults(t *testing.T) {
	path := writeTheme(t, "theme.toml", "[styles]\nerror = \"underline green\"\n")
	th, err := theme.LoadFile(path)
	require.NoError(t, err)

	st, err := th.Get("error")
	require.NoError(t, err)
	assert.False(t, st.IsBold(), "override replaces the default entirely")

	// Untouched entries keep their defaults.
	assert.True(t, th.Has("heading"))
}

func TestUserFileYAML(t *testing.T) {
	path := writeTheme(t, "theme.yaml", "styles:\n  custom: \"bold yellow\"\n")
	th, err := theme.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, th.Has("custom"))
}

func TestGetUnknownName(t *testing.T) {
	th, err := theme.Default()
	require.NoError(t, err)

	_, err = th.Get("no-such-style")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeNotFound))
}

func TestInvalidStyleSpecFailsLoad(t *testing.T) {
	path := writeTheme(t, "theme.toml", "[styles]\nbad = \"sparkly\"\n")
	_, err := theme.LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))
}

func TestNamesSorted(t *testing.T) {
	th, err := theme.Default()
	require.NoError(t, err)
	names := th.Names()
	require.NotEmpty(t, names)
	assert.IsType(t, []string{}, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestThemeAsMarkupResolver(t *testing.T) {
	th, err := theme.Default()
	require.NoError(t, err)

	txt, err := markup.Parse("<heading>Title</heading> and <bold-red>raw</bold-red>", th.Resolve)
	require.NoError(t, err)
	assert.Equal(t, "Title and raw", txt.Content())

	_, err = markup.Parse("<zorp>x</zorp>", th.Resolve)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkupParse))
}
