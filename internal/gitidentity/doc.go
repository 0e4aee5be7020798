// Package gitidentity derives a <branch>@<short-hash>[-dirty] identifier for a
// git working tree and folds it into development version strings.
//
// Service runs git rev-parse --abbrev-ref HEAD, git rev-parse --short HEAD and
// git diff-index --quiet HEAD inside the repository directory. Only a missing
// repository directory is reported as an error; git failures shape the
// identity instead.
package gitidentity
