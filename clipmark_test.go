package clipmark_test

import (
	"errors"
	"testing"

	"github.com/mwalczak/clipmark"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := clipmark.Errorf(clipmark.ENOTFOUND, "clip %q not found", "test")

	assert.Equal(t, clipmark.ENOTFOUND, clipmark.ErrorCode(err))
	assert.Equal(t, "clip \"test\" not found", clipmark.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clipmark.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, clipmark.EINTERNAL, clipmark.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clipmark.ErrorMessage(nil))
}

func TestClip_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		clip := &clipmark.Clip{Title: "A Title"}
		err := clip.Validate()

		assert.Equal(t, clipmark.EINVALID, clipmark.ErrorCode(err))
	})

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()

		clip := &clipmark.Clip{SourceURL: "https://example.com/a"}
		err := clip.Validate()

		assert.Equal(t, clipmark.EINVALID, clipmark.ErrorCode(err))
	})

	t.Run("accepts complete clip", func(t *testing.T) {
		t.Parallel()

		clip := &clipmark.Clip{SourceURL: "https://example.com/a", Title: "A Title"}

		assert.NoError(t, clip.Validate())
	})
}
