package codec

import (
	"bufio"
	"io"

	"profile_decorator/decorator_mode"
)

type TextCodec struct {
	buf *bufio.Writer
}

func NewTextCodec(w io.Writer) Codec {
	return &TextCodec{buf: bufio.NewWriter(w)}
}

func (c *TextCodec) Write(profile decorator_mode.Profile) error {
	if _, err := c.buf.WriteString(decorator_mode.Describe(profile) + "\n"); err != nil {
		return err
	}
	return c.buf.Flush()
}
