// Package utils hosts the configuration and logging plumbing shared by the CLI.
//
// ConfigurationLoader layers embedded defaults, an optional configuration file
// and prefixed environment variables through Viper. LoggerFactory builds zap
// loggers that write to the command's error stream.
package utils
