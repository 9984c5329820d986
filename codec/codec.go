package codec

import (
	"errors"
	"fmt"
	"io"

	"profile_decorator/decorator_mode"
)

var ErrUnknownCodec = errors.New("unknown codec")

// Summary is the serialised form of a profile.
type Summary struct {
	Features string `json:"features"`
	Cost     int    `json:"cost"`
}

func NewSummary(profile decorator_mode.Profile) Summary {
	return Summary{Features: profile.Features(), Cost: profile.Cost()}
}

// Codec writes profiles to an output stream, one record per profile.
type Codec interface {
	Write(decorator_mode.Profile) error
}

type NewCodecFunc func(io.Writer) Codec

type Type string

const (
	TextType Type = "text"
	JsonType Type = "json"
)

var NewCodecFuncMap map[Type]NewCodecFunc

func init() {
	NewCodecFuncMap = make(map[Type]NewCodecFunc)
	NewCodecFuncMap[TextType] = NewTextCodec
	NewCodecFuncMap[JsonType] = NewJsonCodec
}

func NewCodec(t Type, w io.Writer) (Codec, error) {
	f, ok := NewCodecFuncMap[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, t)
	}
	return f(w), nil
}
