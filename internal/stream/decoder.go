// Package stream decodes the server-sent-event body of the recommendation
// stream into [models.StreamEvent] values.
//
// [Decoder] handles framing only: it turns arbitrarily split chunks of the
// response body into `data:` payloads. [Stream] drives a Decoder over a live
// response body and exposes the decoded events through a pull-style
// [Stream.Recv].
package stream

import "bytes"

const dataPrefix = "data: "

// Decoder splits a byte stream into event payloads.
//
// Bytes after the last newline are kept until the next Feed, so the result
// does not depend on how the transport split the body. A fragment that never
// receives its newline is discarded by the caller at end of stream.
type Decoder struct {
	pending []byte
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends chunk to the buffered fragment and returns the payloads of
// every complete `data: ` line found. Blank lines, comment lines starting
// with ':' and other SSE fields are skipped.
func (d *Decoder) Feed(chunk []byte) [][]byte {
	d.pending = append(d.pending, chunk...)

	var payloads [][]byte
	for {
		idx := bytes.IndexByte(d.pending, '\n')
		if idx < 0 {
			break
		}

		line := bytes.TrimSuffix(d.pending[:idx], []byte{'\r'})
		d.pending = d.pending[idx+1:]

		if !bytes.HasPrefix(line, []byte(dataPrefix)) {
			continue
		}

		payload := bytes.TrimSpace(line[len(dataPrefix):])
		if len(payload) == 0 {
			continue
		}
		// copy: pending is reused by the next append
		payloads = append(payloads, bytes.Clone(payload))
	}

	if len(d.pending) == 0 {
		d.pending = nil
	}

	return payloads
}

// Buffered reports the size of the incomplete trailing fragment.
func (d *Decoder) Buffered() int {
	return len(d.pending)
}
