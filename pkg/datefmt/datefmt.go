// Package datefmt validates Joda/SimpleDateFormat-style patterns
// ("yyyy-MM-dd_HHmm") and formats and parses times with them, so that
// Config.txt patterns can be used unchanged.
package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vjeantet/jodaTime"
)

var (
	// ErrUnsupported indicates a pattern letter with no Go layout equivalent.
	ErrUnsupported = errors.New("unsupported pattern letter")

	// ErrLiteral indicates literal text that Go would read as a layout token.
	ErrLiteral = errors.New("literal text collides with layout token")

	// ErrUnterminated indicates a quoted literal without a closing quote.
	ErrUnterminated = errors.New("unterminated quoted literal")
)

// probe is a reference instant that shares no field value with Go's
// reference time, so formatting a literal with it exposes hidden tokens.
var probe = time.Date(1987, time.November, 28, 19, 37, 48, 123456789, time.FixedZone("XYZ", 3*3600))

// Layout is a validated date pattern. Formatting and parsing go through
// jodaTime; the Go layout computed during validation is kept for display and
// for the strictness checks below.
type Layout struct {
	pattern string
	layout  string
}

// Compile validates pattern and computes its Go layout equivalent.
//
// Supported letters: y, M, d, H, h, m, s, S (directly after '.' or ','),
// a, E, z and Z. Text inside single quotes is literal; '' is a quote.
// Patterns whose literal text would be read back as a date field are
// rejected, since file names could then not be parsed again.
func Compile(pattern string) (*Layout, error) {
	if pattern == "" {
		return nil, errors.New("empty pattern")
	}

	var (
		out     strings.Builder
		literal strings.Builder
	)
	flush := func() error {
		lit := literal.String()
		literal.Reset()
		if lit == "" {
			return nil
		}
		if probe.Format(lit) != lit {
			return fmt.Errorf("%w: %q", ErrLiteral, lit)
		}
		out.WriteString(lit)
		return nil
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}
			end := -1
			var quoted strings.Builder
			for j := i + 1; j < len(runes); j++ {
				if runes[j] != '\'' {
					quoted.WriteRune(runes[j])
					continue
				}
				if j+1 < len(runes) && runes[j+1] == '\'' {
					quoted.WriteRune('\'')
					j++
					continue
				}
				end = j
				break
			}
			if end < 0 {
				return nil, fmt.Errorf("%w in %q", ErrUnterminated, pattern)
			}
			literal.WriteString(quoted.String())
			i = end + 1
			continue
		}

		if !isLetter(r) {
			literal.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}

		// Fractional seconds attach to the preceding separator in Go layouts.
		if r == 'S' {
			lit := literal.String()
			if lit == "" || !strings.ContainsAny(lit[len(lit)-1:], ".,") || n > 9 {
				return nil, fmt.Errorf("%w: %q must follow '.' or ',' and be at most 9 long", ErrUnsupported, strings.Repeat("S", n))
			}
			literal.Reset()
			if err := writeLiteral(&out, lit[:len(lit)-1]); err != nil {
				return nil, err
			}
			out.WriteString(lit[len(lit)-1:])
			out.WriteString(strings.Repeat("0", n))
			i += n
			continue
		}

		if err := flush(); err != nil {
			return nil, err
		}
		tok, err := token(r, n)
		if err != nil {
			return nil, err
		}
		if tok == "2" && strings.HasSuffix(out.String(), "_") {
			return nil, fmt.Errorf("%w: '_' before day of month", ErrLiteral)
		}
		out.WriteString(tok)
		i += n
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return &Layout{pattern: pattern, layout: out.String()}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Layout {
	l, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

func writeLiteral(out *strings.Builder, lit string) error {
	if lit != "" && probe.Format(lit) != lit {
		return fmt.Errorf("%w: %q", ErrLiteral, lit)
	}
	out.WriteString(lit)
	return nil
}

func token(r rune, n int) (string, error) {
	switch r {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M':
		switch {
		case n == 1:
			return "1", nil
		case n == 2:
			return "01", nil
		case n == 3:
			return "Jan", nil
		default:
			return "January", nil
		}
	case 'd':
		switch n {
		case 1:
			return "2", nil
		case 2:
			return "02", nil
		}
	case 'H':
		if n <= 2 {
			return "15", nil
		}
	case 'h':
		switch n {
		case 1:
			return "3", nil
		case 2:
			return "03", nil
		}
	case 'm':
		switch n {
		case 1:
			return "4", nil
		case 2:
			return "04", nil
		}
	case 's':
		switch n {
		case 1:
			return "5", nil
		case 2:
			return "05", nil
		}
	case 'a':
		return "PM", nil
	case 'E':
		if n <= 3 {
			return "Mon", nil
		}
		return "Monday", nil
	case 'z':
		return "MST", nil
	case 'Z':
		return "-0700", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, strings.Repeat(string(r), n))
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Pattern returns the source pattern.
func (l *Layout) Pattern() string { return l.pattern }

// GoLayout returns the compiled Go layout.
func (l *Layout) GoLayout() string { return l.layout }

func (l *Layout) String() string { return l.pattern }

// Format renders t with the pattern.
func (l *Layout) Format(t time.Time) string {
	return jodaTime.Format(l.pattern, t)
}

// Parse parses value in loc, which must be Local, UTC or a named zone.
// Unlike SimpleDateFormat the whole value must match.
func (l *Layout) Parse(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := jodaTime.ParseInLocation(l.pattern, value, loc.String())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q as %q: %w", value, l.pattern, err)
	}
	return t, nil
}
