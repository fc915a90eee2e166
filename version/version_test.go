package version

import (
	"strings"
	"testing"

	"github.com/omt66/oxrr/cliout"
	"github.com/omt66/oxrr/testutil"
)

func TestInfoString(t *testing.T) {
	info := New("oxrr")
	got := info.String()
	for _, want := range []string{"oxrr", "0.0.0-dev", "unknown"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestCommandOutput(t *testing.T) {
	cliout.NoColor()

	info := New("oxrr")
	info.Version = "1.2.3"
	cmd := NewCommand(info)

	out := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})

	if !testutil.Contains(out, "oxrr Version") || !testutil.Contains(out, "1.2.3") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestCommandQuiet(t *testing.T) {
	info := New("oxrr")
	info.Version = "1.2.3"
	cmd := NewCommand(info)
	cmd.SetArgs([]string{"--quiet"})

	out := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})

	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("quiet output = %q, want bare version", out)
	}
}
