package logger

import "go.uber.org/zap/zapcore"

const (
	ConfigurationKeyLevel         = "log.level"
	ConfigurationKeyEncoding      = "log.encoding"
	ConfigurationKeyDisableCaller = "log.disableCaller"
)

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `json:"level"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `json:"encoding"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	DisableCaller bool `json:"disableCaller"`
}

// DefaultCfg is the configuration used if no other settings are given.
var DefaultCfg = Config{
	Level:         "info",
	Encoding:      "console",
	DisableCaller: true,
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
	EncodeName:     zapcore.FullNameEncoder,
}
