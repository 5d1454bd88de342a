// Package configuration loads settings from config files, environment variables and command
// line flags into a single koanf instance. All keys are lower cased.
package configuration
