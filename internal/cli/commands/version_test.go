package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abc1234")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"joinforge v1.2.3", "abc1234"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output should contain %q, got: %s", want, buf.String())
		}
	}
}
