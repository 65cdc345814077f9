package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateModelPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	// The working directory itself and children are fine.
	path, err := validateModelPath(wd)
	assert.NoError(t, err)
	assert.Equal(t, wd, path)

	path, err = validateModelPath("models")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "models"), path)

	// A sibling directory sharing the prefix must be rejected.
	_, err = validateModelPath(wd + "-evil")
	assert.Error(t, err)

	// So must anything escaping upward.
	_, err = validateModelPath(filepath.Join(wd, "..", "other"))
	assert.Error(t, err)
}
