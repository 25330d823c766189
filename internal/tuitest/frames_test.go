package tuitest

import (
	"bytes"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst  \r\n\x1b[2J\x1b[H\x1b[1msecond\x1b[0m\r\n\r\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Plain != "first" || frames[1].Plain != "second" {
		t.Fatalf("unexpected frames %q %q", frames[0].Plain, frames[1].Plain)
	}
	rec := &Recording{Raw: raw, Frames: frames}
	if last, ok := rec.FinalFrame(); !ok || last.Index != 1 {
		t.Fatalf("unexpected final frame %#v", last)
	}
	if !rec.Contains("second") || rec.Contains("\x1b[1m") {
		t.Fatalf("plain text should be searchable: %q", rec.Plain())
	}
}

func TestParseFramesWithoutClear(t *testing.T) {
	frames := parseFrames([]byte("\x1b[31minline\x1b[0m\r\n"))
	if len(frames) != 1 || frames[0].Plain != "inline" {
		t.Fatalf("unexpected frames %#v", frames)
	}
}

func TestTerminalResponderAnswersSplitQueries(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("hello \x1b[6"))
	if out.Len() != 0 {
		t.Fatalf("partial query answered early: %q", out.String())
	}
	tr.Process([]byte("n and \x1b]11;?\x07"))
	want := "\x1b[1;1R\x1b]11;rgb:0000/0000/0000\x07"
	if out.String() != want {
		t.Fatalf("unexpected replies %q", out.String())
	}
}

func TestTypeProducesOneStepPerRune(t *testing.T) {
	steps := Type("5É1", 0)
	if len(steps) != 3 || string(steps[1].Input) != "É" {
		t.Fatalf("unexpected steps %#v", steps)
	}
}
