package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestComputeCommand(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"compute", "156", "--tank", "30k", "--copy", "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		appHandle = nil
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.String() != "20546 L\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		appHandle = nil
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "dipgauge dev") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
