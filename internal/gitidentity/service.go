package gitidentity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/gitid/internal/execshell"
	"github.com/temirov/gitid/internal/filesystem"
)

const (
	repositoryPathRequiredMessageConstant      = "repository path must be provided"
	gitExecutorMissingMessageConstant          = "git executor not configured"
	repositoryDirectoryMissingTemplateConstant = "Directory `%s` does not exist."
	gitRevParseSubcommandConstant              = "rev-parse"
	gitAbbrevRefFlagConstant                   = "--abbrev-ref"
	gitShortFlagConstant                       = "--short"
	gitDiffIndexSubcommandConstant             = "diff-index"
	gitQuietFlagConstant                       = "--quiet"
	gitHeadReferenceConstant                   = "HEAD"
	identityResolvedMessageConstant            = "git identity resolved"
	branchUnavailableMessageConstant           = "branch lookup produced no identity"
	logFieldRepositoryPathConstant             = "repository_path"
	logFieldBranchConstant                     = "branch"
	logFieldShortHashConstant                  = "short_hash"
	logFieldDirtyConstant                      = "dirty"
	logFieldIdentityConstant                   = "identity"
	logFieldVersionConstant                    = "version"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// RepositoryDirectoryError reports a repository path that does not name an existing directory.
type RepositoryDirectoryError struct {
	RepositoryPath string
	Cause          error
}

// Error describes the missing directory.
func (directoryError RepositoryDirectoryError) Error() string {
	return fmt.Sprintf(repositoryDirectoryMissingTemplateConstant, directoryError.RepositoryPath)
}

// Unwrap exposes the stat failure, if any.
func (directoryError RepositoryDirectoryError) Unwrap() error {
	return directoryError.Cause
}

// GitExecutor runs git inside a working directory.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// FileSystem exposes the filesystem lookups used to validate the repository path.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
}

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	GitExecutor GitExecutor
	FileSystem  FileSystem
	Logger      *zap.Logger
}

// Options configure a single identity resolution.
type Options struct {
	RepositoryPath  string
	VersionTemplate string
}

// Result captures everything learned about the repository.
type Result struct {
	RepositoryPath          string
	BranchResolved          bool
	Branch                  string
	ShortHash               string
	Dirty                   bool
	Identity                string
	VersionTemplateSupplied bool
	Version                 string
}

// Output is the single line the command prints: the version when a template was supplied, the identity otherwise.
func (result Result) Output() string {
	if result.VersionTemplateSupplied {
		return result.Version
	}
	return result.Identity
}

// Service resolves git identities by querying the git executable.
type Service struct {
	executor   GitExecutor
	fileSystem FileSystem
	logger     *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}

	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{executor: dependencies.GitExecutor, fileSystem: fileSystem, logger: logger}, nil
}

// Resolve validates the repository directory and then runs, in order, the branch lookup,
// the short hash lookup and the working tree comparison. Git failures never surface as
// errors: a failed branch lookup leaves the identity empty and skips the other two commands.
func (service *Service) Resolve(executionContext context.Context, options Options) (Result, error) {
	repositoryPath := options.RepositoryPath
	if len(repositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	if validationError := service.validateRepositoryDirectory(repositoryPath); validationError != nil {
		return Result{}, validationError
	}

	result := Result{
		RepositoryPath:          repositoryPath,
		VersionTemplateSupplied: len(options.VersionTemplate) > 0,
	}

	branch, branchResolved := service.lookupBranch(executionContext, repositoryPath)
	if branchResolved {
		result.BranchResolved = true
		result.Branch = branch
		result.ShortHash = service.lookupShortHash(executionContext, repositoryPath)
		result.Dirty = service.workingTreeDirty(executionContext, repositoryPath)
	} else {
		service.logger.Debug(branchUnavailableMessageConstant, zap.String(logFieldRepositoryPathConstant, repositoryPath))
	}

	result.Identity = FormatIdentity(result.BranchResolved, result.Branch, result.ShortHash, result.Dirty)
	if result.VersionTemplateSupplied {
		result.Version = FormatVersion(options.VersionTemplate, result.Identity)
	}

	service.logger.Info(
		identityResolvedMessageConstant,
		zap.String(logFieldRepositoryPathConstant, repositoryPath),
		zap.String(logFieldBranchConstant, result.Branch),
		zap.String(logFieldShortHashConstant, result.ShortHash),
		zap.Bool(logFieldDirtyConstant, result.Dirty),
		zap.String(logFieldIdentityConstant, result.Identity),
		zap.String(logFieldVersionConstant, result.Version),
	)

	return result, nil
}

func (service *Service) validateRepositoryDirectory(repositoryPath string) error {
	fileInfo, statError := service.fileSystem.Stat(repositoryPath)
	if statError != nil {
		return RepositoryDirectoryError{RepositoryPath: repositoryPath, Cause: statError}
	}
	if !fileInfo.IsDir() {
		return RepositoryDirectoryError{RepositoryPath: repositoryPath}
	}
	return nil
}

// The raw output is tested for emptiness before trimming.
func (service *Service) lookupBranch(executionContext context.Context, repositoryPath string) (string, bool) {
	executionResult, executionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil || len(executionResult.StandardOutput) == 0 {
		return "", false
	}
	return strings.TrimSpace(executionResult.StandardOutput), true
}

// The exit code is not consulted: whatever git printed is used.
func (service *Service) lookupShortHash(executionContext context.Context, repositoryPath string) string {
	executionResult, executionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitShortFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		var failedError execshell.CommandFailedError
		if errors.As(executionError, &failedError) {
			return strings.TrimSpace(failedError.Result.StandardOutput)
		}
		return ""
	}
	return strings.TrimSpace(executionResult.StandardOutput)
}

// Only a non-zero exit marks the tree dirty; a command that could not run does not.
func (service *Service) workingTreeDirty(executionContext context.Context, repositoryPath string) bool {
	_, executionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitDiffIndexSubcommandConstant, gitQuietFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	var failedError execshell.CommandFailedError
	return errors.As(executionError, &failedError)
}
