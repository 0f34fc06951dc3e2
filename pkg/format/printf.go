// Package format is a small printf-style renderer that writes straight to a
// byte transport. It does not use package fmt, keeping the output path free
// of reflection and intermediate strings.
//
// Conversions have the form %[flags][width][l]verb:
//
//	flags  '-' left-justify, '0' pad numbers with zeros
//	width  minimum field width in decimal
//	l, ll  accepted and ignored; every integer is handled as 64 bits
//	verb   c s d i u x X o b %
//
// Bad conversions are rendered inline the way package fmt does it, e.g.
// "%!d(MISSING)" or "%!s(BADARG)".
package format

import "github.com/kcaldas/microshell/pkg/transport"

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

type spec struct {
	left  bool
	zero  bool
	width int
	verb  byte
}

type printer struct {
	w    transport.Writer
	args []any
	argi int
	n    int
}

// Fprintf renders format onto w and returns the number of bytes written.
func Fprintf(w transport.Writer, format string, args ...any) int {
	p := printer{w: w, args: args}
	p.run(format)
	return p.n
}

func (p *printer) put(b byte) {
	p.w.Put(b)
	p.n++
}

func (p *printer) puts(s string) {
	for i := 0; i < len(s); i++ {
		p.put(s[i])
	}
}

func (p *printer) run(f string) {
	for i := 0; i < len(f); i++ {
		if f[i] != '%' {
			p.put(f[i])
			continue
		}
		i++

		var s spec
	flags:
		for ; i < len(f); i++ {
			switch f[i] {
			case '-':
				s.left = true
			case '0':
				s.zero = true
			default:
				break flags
			}
		}
		for ; i < len(f) && f[i] >= '0' && f[i] <= '9'; i++ {
			s.width = s.width*10 + int(f[i]-'0')
		}
		for ; i < len(f) && f[i] == 'l'; i++ {
		}
		if i >= len(f) {
			p.puts("%!(NOVERB)")
			return
		}
		s.verb = f[i]
		p.convert(s)
	}
}

func (p *printer) next() (any, bool) {
	if p.argi >= len(p.args) {
		return nil, false
	}
	a := p.args[p.argi]
	p.argi++
	return a, true
}

func (p *printer) bad(verb byte, reason string) {
	p.puts("%!")
	p.put(verb)
	p.put('(')
	p.puts(reason)
	p.put(')')
}

func (p *printer) convert(s spec) {
	if s.verb == '%' {
		p.put('%')
		return
	}

	switch s.verb {
	case 'c', 's', 'd', 'i', 'u', 'x', 'X', 'o', 'b':
	default:
		p.bad(s.verb, "BADVERB")
		return
	}

	arg, ok := p.next()
	if !ok {
		p.bad(s.verb, "MISSING")
		return
	}

	switch s.verb {
	case 'c':
		c, ok := toChar(arg)
		if !ok {
			p.bad(s.verb, "BADARG")
			return
		}
		var one [1]byte
		one[0] = c
		p.field(s, "", one[:])

	case 's':
		switch v := arg.(type) {
		case string:
			p.fieldString(s, v)
		case []byte:
			p.field(s, "", v)
		default:
			p.bad(s.verb, "BADARG")
		}

	case 'd', 'i':
		v, ok := toInt64(arg)
		if !ok {
			p.bad(s.verb, "BADARG")
			return
		}
		sign := ""
		u := uint64(v)
		if v < 0 {
			sign = "-"
			u = uint64(-v)
		}
		var buf [64]byte
		p.field(s, sign, itoa(buf[:], u, 10, lowerDigits))

	default:
		v, ok := toUint64(arg)
		if !ok {
			p.bad(s.verb, "BADARG")
			return
		}
		base, digits := uint64(10), lowerDigits
		switch s.verb {
		case 'x':
			base = 16
		case 'X':
			base, digits = 16, upperDigits
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		var buf [64]byte
		p.field(s, "", itoa(buf[:], v, base, digits))
	}
}

// field writes sign+body padded to the conversion's width. Zero padding applies to
// numeric verbs only and goes between the sign and the digits.
func (p *printer) field(s spec, sign string, body []byte) {
	pad := s.width - len(sign) - len(body)
	numeric := s.verb != 's' && s.verb != 'c'

	switch {
	case s.left:
		p.puts(sign)
		p.putBytes(body)
		p.repeat(' ', pad)
	case s.zero && numeric:
		p.puts(sign)
		p.repeat('0', pad)
		p.putBytes(body)
	default:
		p.repeat(' ', pad)
		p.puts(sign)
		p.putBytes(body)
	}
}

func (p *printer) fieldString(s spec, v string) {
	pad := s.width - len(v)
	if !s.left {
		p.repeat(' ', pad)
	}
	p.puts(v)
	if s.left {
		p.repeat(' ', pad)
	}
}

func (p *printer) putBytes(b []byte) {
	for _, c := range b {
		p.put(c)
	}
}

func (p *printer) repeat(c byte, n int) {
	for ; n > 0; n-- {
		p.put(c)
	}
}

// itoa renders v into the tail of buf and returns that tail.
func itoa(buf []byte, v, base uint64, digits string) []byte {
	i := len(buf)
	if v == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for v > 0 {
		i--
		buf[i] = digits[v%base]
		v /= base
	}
	return buf[i:]
}

func toChar(a any) (byte, bool) {
	switch v := a.(type) {
	case byte:
		return v, true
	case rune:
		if v < 0 || v > 0x7F {
			return '?', true
		}
		return byte(v), true
	case int:
		if v < 0 || v > 0x7F {
			return '?', true
		}
		return byte(v), true
	}
	return 0, false
}

func toInt64(a any) (int64, bool) {
	switch v := a.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uintptr:
		return int64(v), true
	}
	return 0, false
}

func toUint64(a any) (uint64, bool) {
	switch v := a.(type) {
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uintptr:
		return uint64(v), true
	}
	if v, ok := toInt64(a); ok {
		return uint64(v), true
	}
	return 0, false
}
