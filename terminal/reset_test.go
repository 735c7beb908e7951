package terminal

import (
	"bytes"
	"testing"
)

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.Bytes()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0, csiAutoWrapOn} {
		if !bytes.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
	if bytes.Index(out, csiCursorShow) > bytes.Index(out, csiAltScreenExit) {
		t.Error("Expected cursor to be shown before leaving the alternate screen")
	}
}
