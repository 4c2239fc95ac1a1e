package naming

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/renumber/pkg/errors"
)

// Formatter renders a number through a parsed template
type Formatter struct {
	template string
	segments []segment
}

// segment is either literal text or a replacement field
type segment struct {
	literal string
	field   *fieldSpec
}

type fieldSpec struct {
	fill      rune
	align     rune
	sign      rune
	alternate bool
	width     int
	grouping  rune
	verb      rune
}

// ParseFormatter parses template once. It fails with ErrInvalidConfig when
// the template has unbalanced braces, a field that does not refer to the
// single positional argument, or a specifier an integer cannot satisfy.
func ParseFormatter(template string) (*Formatter, error) {
	f := &Formatter{template: template}

	var lit strings.Builder
	autoFields, manualFields := 0, 0

	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			lit.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			lit.WriteByte('}')
			i += 2
		case c == '}':
			return nil, templateError(template, "single '}' encountered")
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, templateError(template, "single '{' encountered")
			}
			body := template[i+1 : i+1+end]
			if strings.ContainsRune(body, '{') {
				return nil, templateError(template, "nested replacement fields are not supported")
			}

			name, spec, _ := strings.Cut(body, ":")
			switch name {
			case "":
				autoFields++
			case "0":
				manualFields++
			default:
				return nil, templateError(template, "field '{"+name+"}' does not refer to the number; use '{}' or '{0}'")
			}

			field, err := parseFieldSpec(spec)
			if err != nil {
				return nil, templateError(template, err.Error())
			}

			if lit.Len() > 0 {
				f.segments = append(f.segments, segment{literal: lit.String()})
				lit.Reset()
			}
			f.segments = append(f.segments, segment{field: field})
			i += end + 2
		default:
			lit.WriteByte(c)
			i++
		}
	}
	if lit.Len() > 0 {
		f.segments = append(f.segments, segment{literal: lit.String()})
	}

	if autoFields > 0 && manualFields > 0 {
		return nil, templateError(template, "cannot mix '{}' and '{0}' fields")
	}
	if autoFields > 1 {
		return nil, templateError(template, "only one '{}' field is allowed")
	}

	return f, nil
}

// Template returns the source template
func (f *Formatter) Template() string {
	return f.template
}

// Fields returns the number of replacement fields. A template made only of
// escaped braces has none and renders the same text for every number.
func (f *Formatter) Fields() int {
	n := 0
	for _, s := range f.segments {
		if s.field != nil {
			n++
		}
	}
	return n
}

// Format renders n through the template
func (f *Formatter) Format(n int) string {
	var b strings.Builder
	for _, s := range f.segments {
		if s.field == nil {
			b.WriteString(s.literal)
			continue
		}
		b.WriteString(s.field.format(n))
	}
	return b.String()
}

func templateError(template, reason string) *errors.RenumberError {
	return errors.Newf(errors.ErrInvalidConfig, "invalid pattern %q: %s", template, reason).
		WithDetail(errors.DetailPattern, template)
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

// maxWidth bounds the padded field; no filesystem accepts a longer name.
const maxWidth = 255

func parseFieldSpec(spec string) (*fieldSpec, error) {
	fs := &fieldSpec{fill: ' ', verb: 'd'}
	if strings.HasPrefix(spec, "!") {
		return nil, fmt.Errorf("conversions are not supported")
	}

	r := []rune(spec)
	i := 0
	explicitFill := false

	switch {
	case len(r) >= 2 && isAlign(r[1]):
		fs.fill, fs.align = r[0], r[1]
		explicitFill = true
		i = 2
	case len(r) >= 1 && isAlign(r[0]):
		fs.align = r[0]
		i = 1
	}

	if i < len(r) && (r[i] == '+' || r[i] == '-' || r[i] == ' ') {
		fs.sign = r[i]
		i++
	}
	if i < len(r) && r[i] == '#' {
		fs.alternate = true
		i++
	}
	if i < len(r) && r[i] == '0' {
		if !explicitFill {
			fs.fill = '0'
		}
		if fs.align == 0 {
			fs.align = '='
		}
		i++
	}

	start := i
	for i < len(r) && r[i] >= '0' && r[i] <= '9' {
		i++
	}
	if i > start {
		w, err := strconv.Atoi(string(r[start:i]))
		if err != nil {
			return nil, fmt.Errorf("width %q is too large", string(r[start:i]))
		}
		if w > maxWidth {
			return nil, fmt.Errorf("width %d exceeds the maximum of %d", w, maxWidth)
		}
		fs.width = w
	}

	if i < len(r) && (r[i] == ',' || r[i] == '_') {
		fs.grouping = r[i]
		i++
	}
	if i < len(r) && r[i] == '.' {
		return nil, fmt.Errorf("precision is not allowed for a number field")
	}
	if i < len(r) {
		switch r[i] {
		case 'd', 'n', 'b', 'o', 'x', 'X':
			fs.verb = r[i]
		default:
			return nil, fmt.Errorf("unknown format code '%c' for a number", r[i])
		}
		i++
	}
	if i < len(r) {
		return nil, fmt.Errorf("invalid format specifier %q", spec)
	}

	if fs.grouping == ',' && fs.verb != 'd' {
		return nil, fmt.Errorf("cannot specify ',' with '%c'", fs.verb)
	}
	if fs.grouping == '_' && fs.verb == 'n' {
		return nil, fmt.Errorf("cannot specify '_' with 'n'")
	}
	if fs.align == 0 {
		fs.align = '>'
	}
	return fs, nil
}

func (fs *fieldSpec) format(n int) string {
	neg := n < 0
	abs := uint64(n)
	if neg {
		abs = uint64(-(n + 1)) + 1
	}

	var digits, prefix string
	groupSize := 3
	switch fs.verb {
	case 'b':
		digits, prefix, groupSize = strconv.FormatUint(abs, 2), "0b", 4
	case 'o':
		digits, prefix, groupSize = strconv.FormatUint(abs, 8), "0o", 4
	case 'x':
		digits, prefix, groupSize = strconv.FormatUint(abs, 16), "0x", 4
	case 'X':
		digits, prefix, groupSize = strings.ToUpper(strconv.FormatUint(abs, 16)), "0X", 4
	default:
		digits = strconv.FormatUint(abs, 10)
	}
	if !fs.alternate {
		prefix = ""
	}
	if fs.grouping != 0 {
		digits = group(digits, groupSize, string(fs.grouping))
	}

	sign := ""
	switch {
	case neg:
		sign = "-"
	case fs.sign == '+':
		sign = "+"
	case fs.sign == ' ':
		sign = " "
	}

	head := sign + prefix
	length := utf8.RuneCountInString(head) + len(digits)
	pad := fs.width - length
	if pad <= 0 {
		return head + digits
	}

	fill := strings.Repeat(string(fs.fill), pad)
	switch fs.align {
	case '<':
		return head + digits + fill
	case '^':
		left := pad / 2
		return strings.Repeat(string(fs.fill), left) + head + digits + strings.Repeat(string(fs.fill), pad-left)
	case '=':
		return head + fill + digits
	default:
		return fill + head + digits
	}
}

func group(digits string, size int, sep string) string {
	if len(digits) <= size {
		return digits
	}
	var b strings.Builder
	first := len(digits) % size
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < len(digits); i += size {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}
