package prompt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil))
	assert.ErrorIs(t, wrapError(promptui.ErrInterrupt), ErrAborted)
	assert.ErrorIs(t, wrapError(fmt.Errorf("run: %w", promptui.ErrAbort)), ErrAborted)

	other := errors.New("tty closed")
	assert.Equal(t, other, wrapError(other))
}

func TestIsAborted(t *testing.T) {
	assert.True(t, IsAborted(ErrAborted))
	assert.True(t, IsAborted(promptui.ErrInterrupt))
	assert.False(t, IsAborted(errors.New("boom")))
}

func TestConfirmWithForce(t *testing.T) {
	ok, err := ConfirmWithForce("Unmount /mnt", true)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestSearcher(t *testing.T) {
	search := searcher([]SelectOption{
		{Label: "server1.example.com"},
		{Label: "Storage Node 2"},
	})

	assert.True(t, search("server1", 0))
	assert.True(t, search("EXAMPLE", 0))
	assert.False(t, search("server1", 1))
	assert.True(t, search("node2", 1))
	assert.True(t, search("", 1))
}
