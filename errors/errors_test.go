package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := New("error")
	withHint := WithHint(err, "try this fix")

	hints := GetAllHints(withHint)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := NewConfigurationError("axis %q undefined", "mood")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WrapConfiguration(nil, "context"))
	assert.False(t, IsConfigurationError(nil))
	assert.False(t, IsInvalidInputError(nil))
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsConflictError(nil))
}

func TestSentinelConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		msg   string
	}{
		{
			name:  "configuration",
			err:   NewConfigurationError("policy references unknown axis %q", "mood"),
			check: IsConfigurationError,
			msg:   `policy references unknown axis "mood"`,
		},
		{
			name:  "invalid input",
			err:   NewInvalidInputError("axis %q has no values", "age"),
			check: IsInvalidInputError,
			msg:   `axis "age" has no values`,
		},
		{
			name:  "not found",
			err:   NewNotFoundError("domain %q", "magic"),
			check: IsNotFoundError,
			msg:   `domain "magic"`,
		},
		{
			name:  "conflict",
			err:   NewConflictError("domain %q already registered", "character"),
			check: IsConflictError,
			msg:   `domain "character" already registered`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, tt.check(tt.err))
			assert.Contains(t, tt.err.Error(), tt.msg)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := NewInvalidInputError("weight must be positive")
	assert.False(t, IsConfigurationError(err))
	assert.False(t, IsNotFoundError(err))

	cfg := NewConfigurationError("overlap")
	assert.False(t, IsInvalidInputError(cfg))
}

func TestWrapConfiguration(t *testing.T) {
	base := New("yaml: line 3: mapping values are not allowed")
	err := WrapConfiguration(base, "load magic.yaml")

	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "load magic.yaml")
	assert.Contains(t, err.Error(), "mapping values are not allowed")
}

func TestErrorChaining(t *testing.T) {
	err := NewConfigurationError("exclusion references unknown value %q", "purple")
	err = WithHint(err, "check the axis value list")
	err = Wrap(err, "character domain")

	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "character domain")
	assert.Contains(t, GetAllHints(err), "check the axis value list")
}

func ExampleNewConfigurationError() {
	err := NewConfigurationError("axis %q listed as mandatory and optional", "age")
	fmt.Println(err)
	// Output: axis "age" listed as mandatory and optional: invalid configuration
}
