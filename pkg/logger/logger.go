package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

// Logger 日志接口
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

// SlogLogger 基于slog的日志实现
type SlogLogger struct {
	logger *slog.Logger
	closer io.Closer
}

// New 创建日志，输出到stderr；logFile非空时同时以JSON格式写入文件
func New(level, logFile string) (*SlogLogger, error) {
	lvl := ParseLevel(level)
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
	}

	var closer io.Closer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", logFile, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl}))
		closer = f
	}

	return &SlogLogger{
		logger: slog.New(slogmulti.Fanout(handlers...)),
		closer: closer,
	}, nil
}

// NewWithWriter 创建写入指定writer的日志
func NewWithWriter(w io.Writer, level string) *SlogLogger {
	return &SlogLogger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})),
	}
}

// ParseLevel 解析日志级别，未知值按info处理
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With 附加固定字段
func (l *SlogLogger) With(args ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(args...), closer: l.closer}
}

func (l *SlogLogger) Info(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Error(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Debug(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Warn(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// Close 关闭日志文件
func (l *SlogLogger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Recorder 记录日志内容（用于测试）
type Recorder struct {
	mu      sync.Mutex
	Entries []string
}

func (r *Recorder) add(level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, "["+level+"] "+fmt.Sprintf(format, args...))
}

func (r *Recorder) Info(format string, args ...interface{})  { r.add("INFO", format, args...) }
func (r *Recorder) Error(format string, args ...interface{}) { r.add("ERROR", format, args...) }
func (r *Recorder) Debug(format string, args ...interface{}) { r.add("DEBUG", format, args...) }
func (r *Recorder) Warn(format string, args ...interface{})  { r.add("WARN", format, args...) }

// Contains 判断是否有包含指定文本的日志
func (r *Recorder) Contains(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

// Nop 丢弃所有日志
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Debug(string, ...interface{}) {}
func (Nop) Warn(string, ...interface{})  {}
