// Package source reads subtitle files into newline-stripped lines.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// longest single line the scanner accepts
const maxLineSize = 1024 * 1024

// ReadLines reads the file at path, decoding it from the named charset first.
// An empty encoding means UTF-8.
func ReadLines(path, enc string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	lines, err := Decode(file, enc)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return lines, nil
}

// Decode splits r into lines, stripping "\n" and "\r\n" terminators.
func Decode(r io.Reader, enc string) ([]string, error) {
	decoder, err := lookup(enc)
	if err != nil {
		return nil, err
	}
	if decoder != nil {
		r = transform.NewReader(r, decoder.NewDecoder())
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// SupportedEncoding reports whether enc names a known charset.
func SupportedEncoding(enc string) bool {
	_, err := lookup(enc)
	return err == nil
}

// nil encoding means the input is passed through untouched
func lookup(enc string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(enc))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil, nil
	}

	e, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", enc, err)
	}
	return e, nil
}
