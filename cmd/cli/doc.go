// Package cli constructs the git-id command-line interface, wiring the Cobra
// root command, the Viper configuration loader and zap logging to the git
// identity service. Logs go to stderr; stdout carries only the identity line.
package cli
