package client

import (
	"bytes"
	"unicode/utf8"

	"github.com/dmitrijs2005/lmsclient/internal/common"
)

// secretBody is a JSON object encoded straight from byte slices, so secrets
// never pass through an immutable string. Do sends it as is; the caller
// wipes it once the request is done.
type secretBody []byte

type secretField struct {
	name  string
	value []byte
}

const hexDigits = "0123456789abcdef"

func newSecretBody(fields ...secretField) secretBody {
	// sized for the worst-case escaping so the buffer never reallocates and
	// leaves an unwiped copy behind
	size := 2
	for _, f := range fields {
		size += 6*(len(f.name)+len(f.value)) + 6
	}
	var buf bytes.Buffer
	buf.Grow(size)
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, []byte(f.name))
		buf.WriteByte(':')
		writeJSONString(&buf, f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// writeJSONString quotes b. Invalid UTF-8 is replaced with U+FFFD, as
// encoding/json does.
func writeJSONString(buf *bytes.Buffer, b []byte) {
	buf.WriteByte('"')
	for i := 0; i < len(b); {
		c := b[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				buf.WriteByte('\\')
				buf.WriteByte(c)
			case c < 0x20:
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[c>>4])
				buf.WriteByte(hexDigits[c&0xf])
			default:
				buf.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			buf.WriteString("\ufffd")
		} else {
			buf.Write(b[i : i+size])
		}
		i += size
	}
	buf.WriteByte('"')
}

func (b secretBody) wipe() {
	common.WipeByteArray(b)
}
