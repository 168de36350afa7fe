package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Wire formats.
const (
	FormatMsgpack = "msgpack"
	FormatJSON    = "json"
)

// Codec frames and encodes messages on the IPC streams. ReadFrame returns
// io.EOF once the host closes its end.
type Codec interface {
	ReadFrame() ([]byte, error)
	Unmarshal(frame []byte, v any) error
	WriteMessage(v any) error
	Name() string
}

// NewCodec returns the codec for format over r and w.
func NewCodec(format string, r io.Reader, w io.Writer) (Codec, error) {
	switch format {
	case FormatMsgpack, "":
		return newMsgpackCodec(r, w), nil
	case FormatJSON:
		return newJSONCodec(r, w), nil
	default:
		return nil, fmt.Errorf("unknown wire format %q", format)
	}
}

// msgpackCodec reads one complete msgpack value per frame, so a request of
// the wrong shape is rejected without losing the stream position.
type msgpackCodec struct {
	dec *msgpack.Decoder
	enc *msgpack.Encoder
	out *bufio.Writer
}

func newMsgpackCodec(r io.Reader, w io.Writer) *msgpackCodec {
	out := bufio.NewWriter(w)
	return &msgpackCodec{
		dec: msgpack.NewDecoder(bufio.NewReader(r)),
		enc: msgpack.NewEncoder(out),
		out: out,
	}
}

func (c *msgpackCodec) ReadFrame() ([]byte, error) {
	raw, err := c.dec.DecodeRaw()
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *msgpackCodec) Unmarshal(frame []byte, v any) error {
	return msgpack.Unmarshal(frame, v)
}

func (c *msgpackCodec) WriteMessage(v any) error {
	if err := c.enc.Encode(v); err != nil {
		return err
	}
	return c.out.Flush()
}

func (c *msgpackCodec) Name() string {
	return FormatMsgpack
}

// jsonCodec is newline delimited: one object per line in both directions.
type jsonCodec struct {
	reader *bufio.Reader
	writer io.Writer
}

func newJSONCodec(r io.Reader, w io.Writer) *jsonCodec {
	return &jsonCodec{reader: bufio.NewReader(r), writer: w}
}

func (c *jsonCodec) ReadFrame() ([]byte, error) {
	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(bytes.TrimSpace(line)) > 0 {
			return bytes.TrimSpace(line), nil
		}
		return nil, err
	}
	return bytes.TrimSpace(line), nil
}

func (c *jsonCodec) Unmarshal(frame []byte, v any) error {
	return json.Unmarshal(frame, v)
}

func (c *jsonCodec) WriteMessage(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.writer, string(data))
	return err
}

func (c *jsonCodec) Name() string {
	return FormatJSON
}
