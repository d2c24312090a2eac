package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	watch, help, rest := splitArgs([]string{"--watch", "--dir", "token", "--skip-zk", "A.compact"})
	assert.True(t, watch)
	assert.False(t, help)
	assert.Equal(t, []string{"--dir", "token", "--skip-zk", "A.compact"}, rest)

	watch, help, rest = splitArgs([]string{"-h"})
	assert.False(t, watch)
	assert.True(t, help)
	assert.Empty(t, rest)

	watch, _, rest = splitArgs(nil)
	assert.False(t, watch)
	assert.Empty(t, rest)
}
