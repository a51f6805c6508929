package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	FileLevel      logrus.Level
	ConsoleLevel   logrus.Level
	FileDir        string
	DisableConsole bool
}

var (
	defaultConfig = &Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   logrus.InfoLevel,
		FileDir:        "logs",
		DisableConsole: false,
	}
	defaultLogger *logrus.Logger
	mu            sync.Mutex
)

// GenerateTestConfig routes log files into the test's temp dir and keeps the
// console quiet so assertions stay readable.
func GenerateTestConfig(t *testing.T) *Config {
	return &Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   logrus.WarnLevel,
		FileDir:        t.TempDir(),
		DisableConsole: false,
	}
}

func SetDefaultConfig(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	defaultConfig = config
	defaultLogger = nil
}

/*
NewLogger builds a logger according to the default config. Debug and above go to
a dated file under FileDir; ConsoleLevel and above additionally go to stderr
unless the console is disabled.
*/
func NewLogger() *logrus.Logger {
	mu.Lock()
	config := defaultConfig
	mu.Unlock()

	logger := logrus.New()
	logger.SetLevel(config.FileLevel)
	logger.SetOutput(io.Discard)

	if file := openLogFile(config.FileDir); file != nil {
		logger.AddHook(&writerHook{
			writer:    file,
			level:     config.FileLevel,
			formatter: &logrus.JSONFormatter{},
		})
	}

	if !config.DisableConsole {
		logger.AddHook(&writerHook{
			writer:    os.Stderr,
			level:     config.ConsoleLevel,
			formatter: &logrus.TextFormatter{},
		})
	}

	return logger
}

func Default() *logrus.Logger {
	mu.Lock()
	cached := defaultLogger
	mu.Unlock()
	if cached != nil {
		return cached
	}

	logger := NewLogger()
	mu.Lock()
	if defaultLogger == nil {
		defaultLogger = logger
	}
	cached = defaultLogger
	mu.Unlock()
	return cached
}

func openLogFile(dir string) *os.File {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	name := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return file
}

type writerHook struct {
	writer    io.Writer
	level     logrus.Level
	formatter logrus.Formatter
}

func (h *writerHook) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		if level <= h.level {
			levels = append(levels, level)
		}
	}
	return levels
}

func (h *writerHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(line)
	return err
}
