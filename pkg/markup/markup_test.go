package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/glint/pkg/errors"
	"github.com/arthur-debert/glint/pkg/markup"
	"github.com/arthur-debert/glint/pkg/style"
)

func TestParseAppliesTagStyles(t *testing.T) {
	txt, err := markup.Parse("<bold>hi</bold> there", nil)
	require.NoError(t, err)
	assert.Equal(t, "hi there", txt.Content())
}

func TestParseDashTagsMeanSpaces(t *testing.T) {
	txt, err := markup.Parse("<bold-red>alert</bold-red>", nil)
	require.NoError(t, err)
	assert.Equal(t, "alert", txt.Content())
}

func TestParseNestedTagsLayerStyles(t *testing.T) {
	txt, err := markup.Parse("<red>outer <bold>inner</bold></red>", nil)
	require.NoError(t, err)
	assert.Equal(t, "outer inner", txt.Content())
}

func TestParseUnknownTagFails(t *testing.T) {
	_, err := markup.Parse("<zorp>x</zorp>", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkupParse))
}

func TestParseMalformedMarkupFails(t *testing.T) {
	_, err := markup.Parse("<bold>unclosed", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkupParse))
}

func TestParseCustomResolver(t *testing.T) {
	resolver := func(tag string) (style.Style, error) {
		if tag == "title" {
			return style.MustParse("bold underline"), nil
		}
		return markup.StyleResolver(tag)
	}
	txt, err := markup.Parse("<title>Heading</title>", resolver)
	require.NoError(t, err)
	assert.Equal(t, "Heading", txt.Content())
}

func TestParseEntities(t *testing.T) {
	txt, err := markup.Parse("1 &lt; 2 &amp; 3", nil)
	require.NoError(t, err)
	assert.Equal(t, "1 < 2 & 3", txt.Content())
}

func TestStrip(t *testing.T) {
	plain, err := markup.Strip("<bold>hi</bold> <red>there</red>")
	require.NoError(t, err)
	assert.Equal(t, "hi there", plain)
}
