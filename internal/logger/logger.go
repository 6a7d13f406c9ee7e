package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/getsentry/sentry-go"
)

// Log is a no-op logger until Init is called, so library code may log unconditionally.
var Log = zap.NewNop()

// Init builds the process logger from APP_ENV and LOG_LEVEL. Logs go to
// stderr so stdout stays free for filter output.
func Init() {
	var config zap.Config

	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	level := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if level == "" {
		level = "warn"
	}

	parsedLevel, parseErr := zapcore.ParseLevel(level)
	if parseErr != nil {
		parsedLevel = zapcore.WarnLevel
	}
	config.Level = zap.NewAtomicLevelAt(parsedLevel)

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	Log = l.Named("profanity")
}

func InitSentry(dsn, env string) {
	if dsn == "" {
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      env,
		AttachStacktrace: true,
	})
	if err != nil {
		Log.Error("failed to initialize sentry", zap.Error(err))
		return
	}

	Log.Info("Sentry initialized", zap.String("env", env))
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Error logs and forwards the message to Sentry when it is configured.
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)

	sentry.CaptureMessage(msg)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}
