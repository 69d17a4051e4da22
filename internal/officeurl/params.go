package officeurl

import (
	"net/url"
	"strings"
)

// Param is one key=value pair of a descriptor part.
// Raw is the value as written, Value is percent-decoded.
type Param struct {
	Key   string
	Value string
	Raw   string
}

// part is a "name[,k=v...]" segment of a descriptor.
type part struct {
	segment   string
	name      string
	rawParams string
	params    []Param
}

func parsePart(segment string) (part, error) {
	name, rawParams, hasParams := strings.Cut(segment, ",")
	if !validName(name) {
		return part{}, detail(ErrInvalidName, "%q", name)
	}
	p := part{
		segment:   segment,
		name:      strings.ToLower(name),
		rawParams: rawParams,
	}
	if !hasParams {
		return p, nil
	}

	tokens := strings.Split(rawParams, ",")
	p.params = make([]Param, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		key, raw, ok := strings.Cut(token, "=")
		if !ok {
			return part{}, detail(ErrMalformedParameter, "%q has no '='", token)
		}
		if !validName(key) {
			return part{}, detail(ErrMalformedParameter, "invalid key %q", key)
		}
		folded := strings.ToLower(key)
		if _, dup := seen[folded]; dup {
			return part{}, detail(ErrDuplicateParameter, "%q", key)
		}
		seen[folded] = struct{}{}
		value, err := url.PathUnescape(raw)
		if err != nil {
			return part{}, detail(ErrInvalidEncoding, "%s=%s", key, raw)
		}
		p.params = append(p.params, Param{Key: key, Value: value, Raw: raw})
	}
	return p, nil
}

// lookup matches keys case-insensitively.
func (p part) lookup(key string) (Param, bool) {
	for _, param := range p.params {
		if strings.EqualFold(param.Key, key) {
			return param, true
		}
	}
	return Param{}, false
}

func (p part) decoded() map[string]string {
	out := make(map[string]string, len(p.params))
	for _, param := range p.params {
		out[param.Key] = param.Value
	}
	return out
}

func (p part) copyParams() []Param {
	if len(p.params) == 0 {
		return nil
	}
	out := make([]Param, len(p.params))
	copy(out, p.params)
	return out
}

// validName accepts ASCII letters, digits, '.', '_' and '-'.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

const upperhex = "0123456789ABCDEF"

// EscapeValue percent-encodes the descriptor delimiters, '%', control
// characters and non-ASCII bytes so s can be used as a parameter value.
func EscapeValue(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func shouldEscape(c byte) bool {
	switch c {
	case '%', ',', ';', '=':
		return true
	}
	return c <= ' ' || c >= 0x7f
}
