package tuitest

import (
	"bytes"
	"io"
)

// terminalQuery is a request a TUI sends to its terminal and the canned
// reply the harness writes back, so programs that probe colors or cursor
// position do not block on a real terminal.
type terminalQuery struct {
	request []byte
	reply   []byte
}

var terminalQueries = []terminalQuery{
	{request: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")},
	{request: []byte("\x1b]10;?\x07"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{request: []byte("\x1b]10;?\x1b\\"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{request: []byte("\x1b]11;?\x07"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{request: []byte("\x1b]11;?\x1b\\"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const (
	responderMaxBuffer = 256
	responderKeepTail  = 64
)

type terminalResponder struct {
	w       io.Writer
	pending []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, pending: make([]byte, 0, 128)}
}

// Process feeds program output through the responder. A query split across
// two reads is still answered because a short tail is kept between calls.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.pending = append(tr.pending, chunk...)
	for tr.answerNext() {
	}
	if len(tr.pending) > responderMaxBuffer {
		tr.pending = tr.pending[len(tr.pending)-responderKeepTail:]
	}
}

// answerNext replies to the earliest pending query, if any.
func (tr *terminalResponder) answerNext() bool {
	first, at := -1, -1
	for i, q := range terminalQueries {
		idx := bytes.Index(tr.pending, q.request)
		if idx >= 0 && (at < 0 || idx < at) {
			first, at = i, idx
		}
	}
	if first < 0 {
		return false
	}
	q := terminalQueries[first]
	tr.pending = tr.pending[at+len(q.request):]
	_, _ = tr.w.Write(q.reply)
	return true
}
