package codec

import (
	"bufio"
	"io"

	jsoniter "github.com/json-iterator/go"

	"profile_decorator/decorator_mode"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type JsonCodec struct {
	buf *bufio.Writer
	enc *jsoniter.Encoder
}

func NewJsonCodec(w io.Writer) Codec {
	buf := bufio.NewWriter(w)
	return &JsonCodec{
		buf: buf,
		enc: json.NewEncoder(buf),
	}
}

func (c *JsonCodec) Write(profile decorator_mode.Profile) (err error) {
	defer func() {
		if ferr := c.buf.Flush(); err == nil {
			err = ferr
		}
	}()
	return c.enc.Encode(NewSummary(profile))
}
