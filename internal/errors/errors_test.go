package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorer/internal/errors"
)

func TestPathError(t *testing.T) {
	cause := stderrors.New("underlying")
	err := errors.NewPathError("cannot read", "c:/d/x", errors.FileOperationFailed, cause)

	assert.Equal(t, "cannot read: c:/d/x: underlying", err.Error())
	assert.Equal(t, "c:/d/x", err.Path())
	assert.Equal(t, errors.FileOperationFailed, err.Kind())
	assert.ErrorIs(t, err, cause)

	t.Run("without a path", func(t *testing.T) {
		err := errors.NewPathError("bad separator", "", errors.InvalidSeparator, nil)
		assert.Equal(t, "bad separator", err.Error())
		assert.True(t, errors.IsInvalidSeparator(err))
	})
}

func TestPatternError(t *testing.T) {
	cause := stderrors.New("missing closing )")
	err := errors.NewPatternError("invalid expression", "(", cause)

	assert.Equal(t, "invalid expression: (: missing closing )", err.Error())
	assert.Equal(t, "(", err.Pattern())
	assert.True(t, errors.IsInvalidPattern(err))
}

func TestKindInspection(t *testing.T) {
	t.Run("kind survives wrapping", func(t *testing.T) {
		inner := errors.NewKind("no such field", errors.TemplateFieldMissing)
		wrapped := fmt.Errorf("building menu: %w", inner)
		assert.True(t, errors.IsTemplateFieldMissing(wrapped))
	})

	t.Run("foreign errors have no kind", func(t *testing.T) {
		err := stderrors.New("plain")
		assert.False(t, errors.IsInvalidSeparator(err))
		assert.False(t, errors.IsInvalidPattern(err))
		assert.False(t, errors.IsInvalidSettings(err))
		assert.False(t, errors.IsTemplateFieldMissing(err))
	})
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("cause")

	wrapped := errors.Wrap(cause, "context")
	require.Error(t, wrapped)
	assert.Equal(t, "context: cause", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, cause, errors.Unwrap(wrapped))

	assert.Nil(t, errors.Wrap(nil, "context"))
	assert.Nil(t, errors.Wrapf(nil, "context %d", 1))

	formatted := errors.Wrapf(cause, "step %d", 2)
	assert.Equal(t, "step 2: cause", formatted.Error())
}

func TestNew(t *testing.T) {
	assert.Equal(t, "boom", errors.New("boom").Error())
	assert.Equal(t, "boom 3", errors.Newf("boom %d", 3).Error())
}
