package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/speakerdir/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{Resource: "record", ID: "42"}
		assert.Equal(t, "no record with id=42", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("record", "7")
		wrapped := fmt.Errorf("lookup: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
		assert.Equal(t, pkgerrors.KindNotFound, pkgerrors.KindOf(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("id", "abc", "must be an integer")
		assert.Equal(t, "invalid id: must be an integer", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty"}
		assert.Equal(t, "invalid request: empty", err.Error())
	})
}

func TestQueryError(t *testing.T) {
	cause := errors.New("no such table: prelegenci")
	err := pkgerrors.NewQueryError("search", cause)

	assert.Equal(t, "search query failed: no such table: prelegenci", err.Error())
	assert.True(t, pkgerrors.IsQueryError(err))
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, pkgerrors.WrapQuery("list", nil))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want pkgerrors.Kind
	}{
		{"nil", nil, ""},
		{"not found", pkgerrors.NewNotFoundError("record", "1"), pkgerrors.KindNotFound},
		{"validation", pkgerrors.NewValidationError("id", "x", "bad"), pkgerrors.KindBadRequest},
		{"query", pkgerrors.NewQueryError("list", errors.New("boom")), pkgerrors.KindQuery},
		{"unclassified", errors.New("something else"), pkgerrors.KindQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.KindOf(tt.err))
		})
	}
}

func TestIOError(t *testing.T) {
	err := pkgerrors.NewIOError("resolve", "/tmp/x.db", errors.New("permission denied"))
	assert.Equal(t, "IO error during resolve of /tmp/x.db: permission denied", err.Error())
	assert.Nil(t, pkgerrors.WrapIO("open", "x", nil))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("paths", "cannot locate executable", errors.New("boom"))
	assert.Equal(t, "configuration error in paths: cannot locate executable", err.Error())
	assert.Equal(t, "boom", errors.Unwrap(err).Error())
}
