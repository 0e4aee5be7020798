// Package execshell runs external tools such as git and reports their outcome.
//
// ShellExecutor logs every invocation through zap and converts non-zero exit
// codes into CommandFailedError values that still carry the captured output.
// OSCommandRunner is the os/exec backed CommandRunner used outside of tests.
package execshell
