package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer

	PrintError(&buf, errors.New("no executable found for Python 3.6"))

	out := buf.String()
	if !strings.Contains(out, "error:") {
		t.Errorf("output %q missing the error prefix", out)
	}
	if !strings.Contains(out, "no executable found for Python 3.6") {
		t.Errorf("output %q missing the error message", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("output %q missing the trailing newline", out)
	}
}
