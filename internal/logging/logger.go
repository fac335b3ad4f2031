package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/fittracker/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB   = 50
	sentryFlushTimeout = 2 * time.Second
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
	// rotation, zero values fall back to 50MB and keeping all backups
	MaxSizeMB  int
	MaxBackups int
}

// Setup configures the global logrus logger. It returns a flush func that
// must be called before exit so buffered sentry events are sent.
func Setup(params LoggerSetupParams) (flush func()) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	flush = func() {}
	if params.SentryEnabled {
		flush = setupSentry(params)
	}

	logrus.SetOutput(output(params))
	return flush
}

func setupSentry(params LoggerSetupParams) (flush func()) {
	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		logrus.Errorf("sentry init: %s", err)
		return func() {}
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry hook added")

	return func() {
		sentry.Flush(sentryFlushTimeout)
	}
}

// output picks where log lines go: stdout only when no file is set,
// otherwise a rotated file, optionally mirrored to stdout.
func output(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	maxSize := params.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}

	rotated := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize,
		MaxBackups: params.MaxBackups,
		LocalTime:  false, // UTC file names
		Compress:   true,
	}

	if !params.LogToStdout {
		return rotated
	}
	logrus.Println("writing logs to file and STDOUT")
	return pkg.NewCombinedWriter(os.Stdout, rotated)
}

// GetLevel parses a level name, anything unknown means info. Panic level is
// never used by this service so it is not accepted either.
func GetLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil || lvl == logrus.PanicLevel {
		return logrus.InfoLevel
	}
	return lvl
}
