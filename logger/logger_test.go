package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/crankpad/logger"
	"github.com/jetsetilly/crankpad/test"
)

func TestLogTail(t *testing.T) {
	logger.Log(logger.Allow, "test", "a message")
	logger.Logf(logger.Allow, "test", "formatted %d", 100)

	var b strings.Builder
	logger.Tail(&b, -1)

	test.ExpectSuccess(t, strings.Contains(b.String(), "test: a message"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "test: formatted 100"))
}

func TestLogRepeats(t *testing.T) {
	logger.Log(logger.Allow, "repeats", "same message")
	logger.Log(logger.Allow, "repeats", "same message")
	logger.Log(logger.Allow, "repeats", "same message")

	var b strings.Builder
	logger.Tail(&b, 1)

	test.ExpectEquality(t, strings.TrimSpace(b.String()), "repeats: same message (repeat x3)")
}
