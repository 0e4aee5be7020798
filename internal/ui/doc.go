// Package ui renders git command lifecycle events as console log lines for the
// human-readable log format.
package ui
