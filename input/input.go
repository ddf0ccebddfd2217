package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/katalvlaran/stickloop/geom"
)

var (
	// ErrMalformedInput indicates input that does not follow its format.
	ErrMalformedInput = errors.New("input: malformed input")

	// ErrNoSticks indicates an SVG document without line elements.
	ErrNoSticks = errors.New("input: no sticks")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("input: unknown format")
)

// Format selects a reader.
type Format int

const (
	FormatText Format = iota
	FormatSVG
)

// String returns "text" or "svg".
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatSVG:
		return "svg"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat maps "text" and "svg" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "svg":
		return FormatSVG, nil
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// FormatOf guesses the format from a file name: ".svg" is FormatSVG,
// anything else FormatText.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}

	return FormatText
}

// Read dispatches to ReadSticks or ReadSVG.
func Read(r io.Reader, f Format, k geom.Kernel) ([]geom.Stick, error) {
	switch f {
	case FormatText:
		return ReadSticks(r, k)
	case FormatSVG:
		return ReadSVG(r, k)
	default:
		return nil, fmt.Errorf("Read: %s: %w", f, ErrUnknownFormat)
	}
}

// maxPrealloc bounds the capacity reserved up front from the declared count.
const maxPrealloc = 1 << 10

// ReadSticks parses the text format.
func ReadSticks(r io.Reader, k geom.Kernel) ([]geom.Stick, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("ReadSticks: %s: %w", what, err)
		}
		return "", fmt.Errorf("ReadSticks: %s: unexpected end of input: %w", what, ErrMalformedInput)
	}

	tok, err := next("count")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("ReadSticks: count %q: %w", tok, ErrMalformedInput)
	}

	sticks := make([]geom.Stick, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		var v [4]float64
		for j := range v {
			tok, err = next(fmt.Sprintf("record %d", i))
			if err != nil {
				return nil, err
			}
			if v[j], err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, fmt.Errorf("ReadSticks: record %d: %q: %w", i, tok, ErrMalformedInput)
			}
		}
		s, err := k.NewStick(i, geom.Point{X: v[0], Y: v[1]}, geom.Point{X: v[2], Y: v[3]})
		if err != nil {
			return nil, fmt.Errorf("ReadSticks: record %d: %w", i, err)
		}
		sticks = append(sticks, s)
	}

	return sticks, nil
}

// ReadSVG collects the line elements of an SVG document.
func ReadSVG(r io.Reader, k geom.Kernel) ([]geom.Stick, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, fmt.Errorf("ReadSVG: %v: %w", err, ErrMalformedInput)
	}

	lines := root.FindAll("line")
	if len(lines) == 0 {
		return nil, fmt.Errorf("ReadSVG: %w", ErrNoSticks)
	}

	sticks := make([]geom.Stick, 0, len(lines))
	for i, el := range lines {
		var v [4]float64
		for j, name := range [...]string{"x1", "y1", "x2", "y2"} {
			if v[j], err = attr(el, name); err != nil {
				return nil, fmt.Errorf("ReadSVG: line %d: %w", i, err)
			}
		}
		s, err := k.NewStick(i, geom.Point{X: v[0], Y: v[1]}, geom.Point{X: v[2], Y: v[3]})
		if err != nil {
			return nil, fmt.Errorf("ReadSVG: line %d: %w", i, err)
		}
		sticks = append(sticks, s)
	}

	return sticks, nil
}

// attr parses a numeric attribute. A missing attribute is 0, as in SVG.
func attr(el *svgparser.Element, name string) (float64, error) {
	raw, ok := el.Attributes[name]
	if !ok {
		return 0, nil
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "px")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, raw, ErrMalformedInput)
	}

	return f, nil
}
