package scratch

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_Lifecycle(t *testing.T) {
	dir, err := New(zerolog.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir.Path())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	filePath := dir.FilePath("favicon.ico")
	require.NoError(t, os.WriteFile(filePath, []byte{0x00}, 0644))

	dir.Cleanup()

	_, err = os.Stat(dir.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestDir_CleanupIsIdempotent(t *testing.T) {
	dir, err := New(zerolog.Nop())
	require.NoError(t, err)

	dir.Cleanup()
	dir.Cleanup()

	_, err = os.Stat(dir.Path())
	assert.True(t, os.IsNotExist(err))
}
