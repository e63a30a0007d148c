package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/op/go-logging"
)

func TestEnableLogging(t *testing.T) {
	var buf bytes.Buffer
	EnableLogging(&buf, logging.WARNING)

	log := GetLogger("cargo/test")
	log.Warning("something happened")
	log.Debug("too quiet to appear")

	out := buf.String()
	if !strings.Contains(out, "something happened") {
		t.Errorf("warning missing from output %q", out)
	}
	if strings.Contains(out, "too quiet") {
		t.Errorf("debug message leaked into output %q", out)
	}
}
