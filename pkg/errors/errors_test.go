package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeStorageError, "failed to store image", cause)

	require.True(t, IsCode(err, CodeStorageError))
	require.False(t, IsCode(err, CodeNotFound))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "failed to store image: disk full", err.Error())
}

func TestCodeOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(CodeNotFound, "item not found", nil))
	require.Equal(t, CodeNotFound, CodeOf(err))
	require.Equal(t, "", CodeOf(fmt.Errorf("plain")))
}
