package errors_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/glint/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrStyleSyntax, "unknown color")
	assert.Equal(t, `[STYLE_SYNTAX] unknown color`, err.Error())
	assert.Equal(t, errors.ErrStyleSyntax, err.Code)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("file missing")
	err := errors.Wrap(inner, errors.ErrThemeLoad, "loading theme")
	require.NotNil(t, err)
	assert.Equal(t, `[THEME_LOAD] loading theme: file missing`, err.Error())
	assert.Equal(t, inner, err.Unwrap())

	assert.Nil(t, errors.Wrap(nil, errors.ErrThemeLoad, "no-op"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrLiveSession, "update while %s", "stopped")
	assert.True(t, errors.IsErrorCode(err, errors.ErrLiveSession))
	assert.False(t, errors.IsErrorCode(err, errors.ErrStyleSyntax))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrLiveSession))
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrMeasurement, "no measurement")
	assert.Equal(t, errors.ErrMeasurement, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrStyleSyntax, "bad token").WithDetail("token", "blorange")
	assert.Equal(t, "blorange", err.Details["token"])
}
