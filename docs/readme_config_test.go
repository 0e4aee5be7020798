package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/gitid/cmd/cli"
	"github.com/temirov/gitid/internal/utils"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# git-id.yaml"
	readmeSnippetFileNameConstant    = "git-id.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

type readmeApplicationConfiguration struct {
	Common struct {
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"common"`
}

func TestReadmeConfigurationParses(testInstance *testing.T) {
	snippetContent := extractReadmeConfiguration(testInstance)

	var readmeConfiguration readmeApplicationConfiguration
	require.NoError(testInstance, yaml.Unmarshal([]byte(snippetContent), &readmeConfiguration))
	require.NotEmpty(testInstance, readmeConfiguration.Common.LogLevel)
	require.NotEmpty(testInstance, readmeConfiguration.Common.LogFormat)

	configurationPath := filepath.Join(testInstance.TempDir(), readmeSnippetFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(snippetContent), 0o600))

	configurationLoader := utils.NewConfigurationLoader("git-id", "yaml", "GITIDREADME", nil)
	configurationLoader.SetEmbeddedConfiguration(cli.EmbeddedDefaultConfiguration())

	var applicationConfiguration cli.ApplicationConfiguration
	loadedConfiguration, loadError := configurationLoader.LoadConfiguration(configurationPath, nil, &applicationConfiguration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, configurationPath, loadedConfiguration.ConfigFileUsed)
	require.Equal(testInstance, readmeConfiguration.Common.LogLevel, applicationConfiguration.Common.LogLevel)
	require.Equal(testInstance, readmeConfiguration.Common.LogFormat, applicationConfiguration.Common.LogFormat)

	_, loggerError := utils.NewLoggerFactory().CreateLogger(
		utils.LogLevel(applicationConfiguration.Common.LogLevel),
		utils.LogFormat(applicationConfiguration.Common.LogFormat),
		&strings.Builder{},
	)
	require.NoError(testInstance, loggerError)
}

func extractReadmeConfiguration(testInstance *testing.T) string {
	testInstance.Helper()

	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	return strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])
}
