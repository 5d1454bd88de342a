// Package logger builds the zap loggers used by the command line tools.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnknownEncoding is returned if the configured encoding is neither "console" nor "json".
var ErrUnknownEncoding = ierrors.New("unknown log encoding")

// Logger is the type of the loggers handed out by this package.
type Logger = zap.SugaredLogger

// NewRootLogger creates a logger that writes to output according to cfg.
func NewRootLogger(cfg Config, output io.Writer) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "console", "":
		encoder = zapcore.NewConsoleEncoder(defaultEncoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(defaultEncoderConfig)
	default:
		return nil, ierrors.Wrapf(ErrUnknownEncoding, "%q", cfg.Encoding)
	}

	var opts []zap.Option
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(output), level)

	return zap.New(core, opts...).Sugar(), nil
}
