package common

import "testing"

func TestGetLoggerReturnsSingleton(t *testing.T) {
	first := GetLogger()
	second := GetLogger()

	if first == nil {
		t.Fatal("GetLogger() returned nil")
	}
	if first != second {
		t.Error("GetLogger() should return the same instance")
	}
}

func TestInitLoggerReplacesGlobal(t *testing.T) {
	logger := InitLogger(LoggingConfig{
		Level:  "debug",
		Output: []string{"console"},
	})

	if logger == nil {
		t.Fatal("InitLogger() returned nil")
	}
	if GetLogger() != logger {
		t.Error("GetLogger() should return the initialized logger")
	}
}

func TestInitLoggerDefaultsToConsole(t *testing.T) {
	logger := InitLogger(LoggingConfig{Level: "info"})

	if logger == nil {
		t.Fatal("InitLogger() with no outputs returned nil")
	}
}

func TestInitLoggerWithFileOutput(t *testing.T) {
	logger := InitLogger(LoggingConfig{
		Level:  "info",
		Output: []string{"file", "console"},
	})

	if logger == nil {
		t.Fatal("InitLogger() with file output returned nil")
	}
	if GetLogger() != logger {
		t.Error("GetLogger() should return the initialized logger")
	}
}
