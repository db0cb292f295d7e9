// Text codec for the escaped key=value properties format.
// Implements: prd001-property-set R4 (serialization format, round-trip
// compatibility with external tooling).
package props

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
)

// Pair is a single key/value entry. Decode returns pairs in file order and
// Encode writes them in slice order, so callers control ordering.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Encode writes pairs as one key=value line each, using the escape rules the
// original properties tooling expects. No comment or timestamp header is
// emitted, so rewritten files stay byte-stable across runs.
func Encode(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		// Keys escape every space; values only a leading one.
		if _, err := bw.WriteString(escape(p.Key, true)); err != nil {
			return err
		}
		if err := bw.WriteByte('='); err != nil {
			return err
		}
		if _, err := bw.WriteString(escape(p.Value, false)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// escape encodes a string one UTF-16 code unit at a time. Backslash escapes
// itself; tab, newline, carriage return and form feed use their mnemonic
// escapes; the separator and comment characters (= : # !) are
// backslash-escaped; anything outside printable ASCII becomes an uppercase
// \uXXXX escape. Characters above the basic multilingual plane emit a
// surrogate pair, matching the UTF-16 code units the format is defined over.
func escape(s string, escapeSpace bool) string {
	units := utf16.Encode([]rune(s))
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i, c := range units {
		if c > '=' && c < 127 {
			if c == '\\' {
				sb.WriteString(`\\`)
				continue
			}
			sb.WriteByte(byte(c))
			continue
		}
		switch c {
		case ' ':
			if i == 0 || escapeSpace {
				sb.WriteByte('\\')
			}
			sb.WriteByte(' ')
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\f':
			sb.WriteString(`\f`)
		case '=', ':', '#', '!':
			sb.WriteByte('\\')
			sb.WriteByte(byte(c))
		default:
			if c < 0x20 || c > 0x7E {
				fmt.Fprintf(&sb, `\u%04X`, c)
			} else {
				sb.WriteByte(byte(c))
			}
		}
	}
	return sb.String()
}

// Decode parses the properties text format: # and ! comment lines, blank-line
// skipping, backslash line continuation with leading-whitespace elision on the
// continued line, and = / : / unescaped-whitespace key terminators.
func Decode(r io.Reader) ([]Pair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for _, line := range logicalLines(string(data)) {
		p, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// logicalLines splits input into logical lines: natural lines joined by
// backslash continuation, with comments and blanks removed. Leading
// whitespace is stripped from every natural line before joining.
func logicalLines(s string) []string {
	natural := splitNatural(s)

	var logical []string
	for i := 0; i < len(natural); i++ {
		line := strings.TrimLeft(natural[i], " \t\f")
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		for hasContinuation(line) && i+1 < len(natural) {
			i++
			line = line[:len(line)-1] + strings.TrimLeft(natural[i], " \t\f")
		}
		if hasContinuation(line) {
			// Trailing continuation at EOF: the backslash is dropped.
			line = line[:len(line)-1]
		}
		logical = append(logical, line)
	}
	return logical
}

// splitNatural splits on \n, \r\n or bare \r line terminators.
func splitNatural(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// hasContinuation reports whether the line ends with an odd number of
// backslashes, i.e. the final backslash is not itself escaped.
func hasContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// parseLine splits one logical line into a key and value. The key ends at the
// first unescaped =, : or whitespace; whitespace around a single optional
// separator is consumed before the value starts.
func parseLine(line string) (Pair, error) {
	limit := len(line)
	keyLen := 0
	valueStart := limit
	hasSep := false
	precedingBackslash := false

	for keyLen < limit {
		c := line[keyLen]
		if (c == '=' || c == ':') && !precedingBackslash {
			valueStart = keyLen + 1
			hasSep = true
			break
		}
		if (c == ' ' || c == '\t' || c == '\f') && !precedingBackslash {
			valueStart = keyLen + 1
			break
		}
		if c == '\\' {
			precedingBackslash = !precedingBackslash
		} else {
			precedingBackslash = false
		}
		keyLen++
	}

	for valueStart < limit {
		c := line[valueStart]
		if c != ' ' && c != '\t' && c != '\f' {
			if !hasSep && (c == '=' || c == ':') {
				hasSep = true
			} else {
				break
			}
		}
		valueStart++
	}

	key, err := unescape(line[:keyLen])
	if err != nil {
		return Pair{}, err
	}
	value, err := unescape(line[valueStart:])
	if err != nil {
		return Pair{}, err
	}
	return Pair{Key: key, Value: value}, nil
}

// unescape decodes backslash escapes, accumulating UTF-16 code units so that
// \uXXXX surrogate pairs recombine into the characters they encode. An
// unrecognized escape drops the backslash and keeps the character.
func unescape(s string) (string, error) {
	rs := []rune(s)
	units := make([]uint16, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		if c != '\\' {
			units = utf16.AppendRune(units, c)
			continue
		}
		i++
		if i >= len(rs) {
			break
		}
		switch rs[i] {
		case 'u':
			if i+4 >= len(rs) {
				return "", fmt.Errorf("malformed \\uXXXX escape in %q", s)
			}
			var v uint16
			for _, h := range rs[i+1 : i+5] {
				d, ok := hexDigit(h)
				if !ok {
					return "", fmt.Errorf("malformed \\uXXXX escape in %q", s)
				}
				v = v<<4 | uint16(d)
			}
			units = append(units, v)
			i += 4
		case 't':
			units = append(units, '\t')
		case 'n':
			units = append(units, '\n')
		case 'r':
			units = append(units, '\r')
		case 'f':
			units = append(units, '\f')
		default:
			units = utf16.AppendRune(units, rs[i])
		}
	}
	return string(utf16.Decode(units)), nil
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}
