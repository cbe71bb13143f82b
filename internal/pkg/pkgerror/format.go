package pkgerror

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedTemplate indicates unbalanced braces or a non-numeric placeholder.
	ErrMalformedTemplate = errors.New("malformed message template")
	// ErrArgumentCount indicates the args do not fill the template slots exactly.
	ErrArgumentCount = errors.New("argument count does not match template")
)

func prefix(code int) string {
	return fmt.Sprintf("(E%02d) ", code)
}

// substitute replaces positional placeholders ({0}, {1}, ...) with args.
// "{{" and "}}" produce literal braces. The slot count of a template is its
// highest placeholder index plus one.
func substitute(tmpl string, args []any) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	slots := 0
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed placeholder at offset %d", ErrMalformedTemplate, i)
			}

			raw := tmpl[i+1 : i+1+end]
			idx, ok := parseIndex(raw)
			if !ok {
				return "", fmt.Errorf("%w: placeholder %q at offset %d", ErrMalformedTemplate, "{"+raw+"}", i)
			}

			if idx+1 > slots {
				slots = idx + 1
			}
			if idx < len(args) {
				b.WriteString(fmt.Sprint(args[idx]))
			}
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: unexpected '}' at offset %d", ErrMalformedTemplate, i)
		default:
			b.WriteByte(c)
		}
	}

	if slots != len(args) {
		return "", fmt.Errorf("%w: template has %d slot(s), got %d argument(s)", ErrArgumentCount, slots, len(args))
	}

	return b.String(), nil
}

func parseIndex(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}

	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return idx, true
}
