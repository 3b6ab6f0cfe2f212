// Package wire encodes sentences as length-prefixed protobuf records so
// downstream tools can consume extractor output without a text format.
//
// Each record is a varint length followed by a message with
//
//	1: text     (bytes)
//	2: position (sint64)
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	sentex "github.com/jamesainslie/go-sentex"
)

const (
	fieldText     protowire.Number = 1
	fieldPosition protowire.Number = 2
)

// ErrMalformed indicates the input is not a valid record stream.
var ErrMalformed = errors.New("wire: malformed record")

// AppendSentence appends one length-prefixed record for s to b.
func AppendSentence(b []byte, s sentex.Sentence) []byte {
	var msg []byte
	msg = protowire.AppendTag(msg, fieldText, protowire.BytesType)
	msg = protowire.AppendString(msg, s.Text)
	if s.Position != 0 {
		msg = protowire.AppendTag(msg, fieldPosition, protowire.VarintType)
		msg = protowire.AppendVarint(msg, protowire.EncodeZigZag(int64(s.Position)))
	}
	return protowire.AppendBytes(b, msg)
}

// Marshal encodes sentences as a record stream.
func Marshal(sentences []sentex.Sentence) []byte {
	var b []byte
	for _, s := range sentences {
		b = AppendSentence(b, s)
	}
	return b
}

// Unmarshal decodes a record stream produced by Marshal.
func Unmarshal(b []byte) ([]sentex.Sentence, error) {
	var sentences []sentex.Sentence
	for len(b) > 0 {
		msg, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformed, len(sentences), protowire.ParseError(n))
		}
		b = b[n:]

		s, err := decodeSentence(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformed, len(sentences), err)
		}
		sentences = append(sentences, s)
	}
	return sentences, nil
}

func decodeSentence(msg []byte) (sentex.Sentence, error) {
	var s sentex.Sentence
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return s, protowire.ParseError(n)
		}
		msg = msg[n:]

		switch {
		case num == fieldText && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(msg)
			if n < 0 {
				return s, protowire.ParseError(n)
			}
			s.Text = v
			msg = msg[n:]
		case num == fieldPosition && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(msg)
			if n < 0 {
				return s, protowire.ParseError(n)
			}
			s.Position = int(protowire.DecodeZigZag(v))
			msg = msg[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return s, protowire.ParseError(n)
			}
			msg = msg[n:]
		}
	}
	return s, nil
}
