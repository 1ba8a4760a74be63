package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Markers(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, &errOut, ColorModeNever)

	printer.Infof("Shutting down %s...", "eth0")
	printer.Successf("Current MAC : %s", "00:11:22:33:44:55")
	printer.Errorf("Invalid MAC address format: %s", "nope")

	assert.Equal(t, "[*] Shutting down eth0...\n[+] Current MAC : 00:11:22:33:44:55\n", out.String())
	assert.Equal(t, "[-] Invalid MAC address format: nope\n", errOut.String())
}

func TestPrinter_ErrorsGoToErrorStream(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, &errOut, ColorModeNever)

	printer.Errorf("boom")

	assert.Empty(t, out.String())
	assert.Equal(t, "[-] boom\n", errOut.String())
}

func TestPrinter_AlwaysModeEmitsEscapeCodes(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, &errOut, ColorModeAlways)

	printer.Successf("ok")

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "[+] ok")
}
