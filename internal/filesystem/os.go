package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements filesystem lookups with the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata, following symbolic links.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
