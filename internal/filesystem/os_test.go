package filesystem_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitid/internal/filesystem"
)

func TestOSFileSystemStat(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	regularFilePath := filepath.Join(temporaryDirectory, "file.txt")
	require.NoError(testInstance, os.WriteFile(regularFilePath, []byte("content"), 0o600))

	directoryInfo, statError := filesystem.OSFileSystem{}.Stat(temporaryDirectory)
	require.NoError(testInstance, statError)
	require.True(testInstance, directoryInfo.IsDir())

	fileInfo, statError := filesystem.OSFileSystem{}.Stat(regularFilePath)
	require.NoError(testInstance, statError)
	require.False(testInstance, fileInfo.IsDir())

	_, statError = filesystem.OSFileSystem{}.Stat(filepath.Join(temporaryDirectory, "missing"))
	require.ErrorIs(testInstance, statError, fs.ErrNotExist)
}
