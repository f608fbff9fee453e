package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kovidgoyal/csscolor"
	"github.com/kovidgoyal/csscolor/colorspace"
)

func run(opts Options, args []string, stdin io.Reader, stdout io.Writer) (err error) {
	switch {
	case opts.Name != "":
		if len(args) > 0 {
			return errors.New("channel values cannot be combined with --name")
		}
		c, ok := csscolor.Named(opts.Name)
		if !ok {
			return fmt.Errorf("unknown color name: %q", opts.Name)
		}
		_, err = fmt.Fprintln(stdout, c.CSSAsPercentage())
		return
	case opts.Batch:
		if len(args) > 0 {
			return errors.New("channel values cannot be combined with --batch")
		}
		colors, err := readColors(stdin)
		if err != nil {
			return err
		}
		lines, err := csscolor.FormatAll(colors)
		if err != nil {
			return err
		}
		w := bufio.NewWriter(stdout)
		for _, line := range lines {
			w.WriteString(line)
			w.WriteByte('\n')
		}
		return w.Flush()
	}
	c, err := parseColor(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, c.CSSAsPercentage())
	return
}

// readColors reads one color per line, skipping blank lines.
func readColors(r io.Reader) (ans []csscolor.Rgb, err error) {
	scanner := bufio.NewScanner(r)
	lnum := 0
	for scanner.Scan() {
		lnum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		c, err := parseColor(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lnum, err)
		}
		ans = append(ans, c)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read colors: %w", err)
	}
	return
}

func parseColor(fields []string) (ans csscolor.Rgb, err error) {
	if len(fields) < 3 || len(fields) > 4 {
		return ans, fmt.Errorf("expected 3 or 4 channel values, got %d", len(fields))
	}
	var ch [4]colorspace.Channel
	for i, f := range fields {
		if ch[i], err = parseChannel(f); err != nil {
			return
		}
	}
	return csscolor.NewRgb(ch[0], ch[1], ch[2], ch[3]), nil
}

func parseChannel(s string) (colorspace.Channel, error) {
	if strings.EqualFold(s, "none") {
		return colorspace.None(), nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return colorspace.None(), fmt.Errorf("invalid channel value %q: %w", s, err)
	}
	if math.IsNaN(v) {
		return colorspace.None(), fmt.Errorf("invalid channel value %q: not a number", s)
	}
	return colorspace.Some(float32(v)), nil
}
