package cliutil

import (
	"bytes"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "lifted %d schemas from %s", 3, "api.yaml")
	if got := buf.String(); got != "lifted 3 schemas from api.yaml" {
		t.Errorf("Writef() = %q", got)
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "done")
	if got := buf.String(); got != "done" {
		t.Errorf("Writef() = %q", got)
	}
}
