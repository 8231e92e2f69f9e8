// Copyright 2024, Dan Kristensen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package stream implements StreamReader, which pulls bytes from a
// synchronous byte source in fixed-size chunks into a bit buffer and
// presents a BitStream view of the unprocessed window to an observer.
package stream

import (
	"io"
	"runtime"

	"github.com/dpkristensen/bfdm-sub000/bitmanip"
	"github.com/dpkristensen/bfdm-sub000/internal/report"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "stream: " + string(e) }

var (
	// ErrBufferOverflow means the observer consumed too little per call to
	// keep pace with the chunk size requested from the source.
	ErrBufferOverflow Error = "stream buffer overflow"
	// ErrSourceRead means the underlying byte source returned a read error.
	ErrSourceRead Error = "source read failed"
	// ErrUnreadData means ReadSequenceEnd found unconsumed bytes without
	// the observer having asked to stop early.
	ErrUnreadData Error = "unread stream data"
)

func reportInternal(where, message string) {
	_, _, line, _ := runtime.Caller(1)
	report.Internal("stream."+where, line, message)
}

func reportRunTime(where, message string) {
	_, _, line, _ := runtime.Caller(1)
	report.RunTime("stream."+where, line, message)
}

// DefaultChunkSize is the chunk size used by NewReader when none is given.
const DefaultChunkSize = 4096

// Control is the action an Observer requests after reading from a BitStream.
type Control int

const (
	// Continue means keep reading from the same BitStream.
	Continue Control = iota
	// NoData means stop for now; no error occurred, but the observer made
	// no progress on this call and should wait for more bytes.
	NoData
	// Stop means the observer is finished with the sequence entirely and
	// a short read at the end is expected, not an error.
	Stop
	// StatusError means the observer detected malformed input.
	StatusError
)

// Observer consumes bits pulled off the stream.
type Observer interface {
	// OnStreamData is invoked repeatedly with a BitStream over the current
	// unprocessed window until it returns anything other than Continue, or
	// the window is exhausted.
	OnStreamData(bs *bitmanip.BitStream) Control
}

// Reader drives a byte source through a double-chunk-sized window, handing
// an observer a BitStream over whatever has not yet been consumed.
type Reader struct {
	source    io.Reader
	chunkSize uint
	observer  Observer

	raw         []byte
	windowStart uint
	windowSize  uint
	bitPos      uint

	started       bool
	done          bool
	errored       bool
	sourceDone    bool
	stoppedByUser bool
}

// NewReader returns a Reader with the default chunk size.
func NewReader(source io.Reader, obs Observer) *Reader {
	return NewReaderSize(source, obs, DefaultChunkSize)
}

// NewReaderSize returns a Reader that pulls chunkSize bytes from source at a
// time, backed by a 2*chunkSize window buffer.
func NewReaderSize(source io.Reader, obs Observer, chunkSize uint) *Reader {
	return &Reader{source: source, observer: obs, chunkSize: chunkSize}
}

// ReadSequenceStart allocates the window buffer (on first use) and resets
// sequence state. It is idempotent across sequences run on the same Reader.
func (r *Reader) ReadSequenceStart() bool {
	if r.raw == nil {
		r.raw = make([]byte, 2*r.chunkSize)
	}
	r.windowStart = 0
	r.windowSize = 0
	r.bitPos = 0
	r.started = true
	r.done = false
	r.errored = false
	r.sourceDone = false
	r.stoppedByUser = false
	return true
}

// ReadSequenceContinue pulls the observer through the current window, then
// refills from the source. It returns false once the sequence has ended,
// whether by error, by the observer stopping, or by source exhaustion.
func (r *Reader) ReadSequenceContinue() bool {
	if !r.started || r.done {
		return false
	}

	windowBits := bitmanip.BytesToBits(r.windowSize)
	buf := bitmanip.NewBitBufferFromBytes(r.raw[r.windowStart:r.windowStart+r.windowSize], windowBits)
	bs := bitmanip.NewBitStream(buf)
	bs.SeekBits(r.bitPos)
	loopStart := r.bitPos

	ctrl := Continue
	for bs.BitsTillEnd() > 0 {
		prevPos := bs.PosBits()
		ctrl = r.observer.OnStreamData(bs)
		newPos := bs.PosBits()

		if newPos < prevPos {
			reportInternal("ReadSequenceContinue", "observer moved stream position backward")
			r.errored = true
			ctrl = StatusError
		} else if newPos == prevPos && ctrl == Continue {
			ctrl = NoData
		}

		if ctrl != Continue {
			break
		}
	}

	processedBits := bs.PosBits() - loopStart
	processedBytes := processedBits / 8
	r.bitPos = processedBits % 8
	r.windowStart += processedBytes
	r.windowSize -= processedBytes

	switch ctrl {
	case StatusError:
		r.errored = true
		r.done = true
		return false
	case Stop:
		r.stoppedByUser = true
		r.done = true
		return false
	}

	copy(r.raw, r.raw[r.windowStart:r.windowStart+r.windowSize])
	r.windowStart = 0

	if r.sourceDone {
		r.done = true
		return false
	}

	freeSpace := uint(len(r.raw)) - r.windowSize
	if freeSpace < r.chunkSize {
		reportRunTime("ReadSequenceContinue", "stream buffer overflow")
		r.errored = true
		r.done = true
		return false
	}

	n, err := r.source.Read(r.raw[r.windowSize : r.windowSize+r.chunkSize])
	if n < 0 {
		reportInternal("ReadSequenceContinue", "source read returned negative count")
		r.errored = true
		r.done = true
		return false
	}
	if err != nil && err != io.EOF {
		reportRunTime("ReadSequenceContinue", "source read failed")
		r.errored = true
		r.done = true
		return false
	}
	r.windowSize += uint(n)
	if err == io.EOF {
		r.sourceDone = true
	}
	return true
}

// ReadSequenceEnd checks that no unprocessed bytes remain unless the
// sequence stopped because the observer requested it.
func (r *Reader) ReadSequenceEnd() bool {
	if r.errored {
		return false
	}
	if r.windowSize > 0 && !r.stoppedByUser {
		reportRunTime("ReadSequenceEnd", "unread stream data")
		return false
	}
	return true
}

// ReadStream is a convenience wrapper running Start, repeated Continue, then
// End.
func (r *Reader) ReadStream() bool {
	if !r.ReadSequenceStart() {
		return false
	}
	for r.ReadSequenceContinue() {
	}
	return r.ReadSequenceEnd()
}
