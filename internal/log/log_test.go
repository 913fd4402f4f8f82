package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if tt.level.String() != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, tt.level.String(), tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFieldCreators(t *testing.T) {
	f := String("key", "value")
	if f.Key != "key" || f.Value != "value" {
		t.Errorf("String field incorrect: %+v", f)
	}

	f = Int("count", 42)
	if f.Key != "count" || f.Value != 42 {
		t.Errorf("Int field incorrect: %+v", f)
	}

	f = Int64("bytes", 1024)
	if f.Key != "bytes" || f.Value != int64(1024) {
		t.Errorf("Int64 field incorrect: %+v", f)
	}

	f = Float64("seconds", 1.5)
	if f.Key != "seconds" || f.Value != 1.5 {
		t.Errorf("Float64 field incorrect: %+v", f)
	}

	f = Bool("enabled", true)
	if f.Key != "enabled" || f.Value != true {
		t.Errorf("Bool field incorrect: %+v", f)
	}

	f = Err(errors.New("test error"))
	if f.Key != "error" || f.Value != "test error" {
		t.Errorf("Err field incorrect: %+v", f)
	}

	f = Err(nil)
	if f.Key != "error" || f.Value != nil {
		t.Errorf("Err(nil) field incorrect: %+v", f)
	}

	f = Duration("elapsed", 5*time.Second)
	if f.Key != "elapsed" || f.Value != "5s" {
		t.Errorf("Duration field incorrect: %+v", f)
	}
}

func TestNullLogger(t *testing.T) {
	logger := &nullLogger{}

	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	child := logger.WithFields(String("key", "value"))
	if child != logger {
		t.Error("nullLogger.WithFields should return same instance")
	}

	if _, ok := NewZapLogger(nil).(*nullLogger); !ok {
		t.Error("NewZapLogger(nil) should return a null logger")
	}
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("debug message")
	if logs.Len() != 0 {
		t.Error("Debug message should be filtered at Info level")
	}

	logger.Info("info message", String("key", "value"))
	entries := logs.TakeAll()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "info message" {
		t.Errorf("message = %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["key"]; got != "value" {
		t.Errorf("field key = %v, want value", got)
	}

	logger.Warn("warn message")
	logger.Error("error message")
	entries = logs.TakeAll()
	if len(entries) != 2 || entries[0].Level != zapcore.WarnLevel || entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestZapLoggerWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	child := logger.WithFields(String("workflow", "encrypt"))
	child.Info("message", String("extra", "field"))

	ctx := logs.All()[0].ContextMap()
	if ctx["workflow"] != "encrypt" {
		t.Error("Output should contain persistent field")
	}
	if ctx["extra"] != "field" {
		t.Error("Output should contain call-specific field")
	}
}

func TestNewLoggerWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.Info("info message", String("key", "value"))

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Error("Debug message should be filtered at Info level")
	}
	if !strings.Contains(output, "INFO") || !strings.Contains(output, "info message") {
		t.Errorf("unexpected output: %q", output)
	}
	if !strings.Contains(output, "value") {
		t.Errorf("output should contain field value: %q", output)
	}
}

func TestDefaultLogger(t *testing.T) {
	logger := GetLogger()
	if _, ok := logger.(*nullLogger); !ok {
		t.Error("Default logger should be null logger")
	}

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, LevelDebug))

	Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Error("Custom logger should receive messages")
	}

	SetLogger(nil)
	if _, ok := GetLogger().(*nullLogger); !ok {
		t.Error("SetLogger(nil) should set null logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(NewZapLogger(zap.New(core)))
	defer SetLogger(nil)

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")

	if logs.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", logs.Len())
	}
	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range logs.All() {
		if e.Level != want[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, want[i])
		}
	}
}

func TestEnableFileLogging(t *testing.T) {
	defer SetLogger(nil)

	path := t.TempDir() + "/dashboard.log"
	if err := EnableFileLogging(path, LevelInfo); err != nil {
		t.Fatalf("EnableFileLogging failed: %v", err)
	}
	if _, ok := GetLogger().(*zapLogger); !ok {
		t.Error("EnableFileLogging should install a zap logger")
	}

	if err := EnableFileLogging(t.TempDir()+"/missing/dir/x.log", LevelInfo); err == nil {
		t.Error("expected error for unwritable path")
	}
}
