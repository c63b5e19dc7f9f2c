package jwc

import (
	"bufio"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/text/transform"
)

// ReadLines decodes r from e and splits it into lines without their line
// breaks.
func ReadLines(r io.Reader, e Encoding) ([]string, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, e.decoder()))
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return lines, pkgerrors.Wrap(err, "failed to read exchange file")
	}
	return lines, nil
}

// ReadFile reads the exchange file at path. See ReadLines.
func ReadFile(path string, e Encoding) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to open exchange file %s", path)
	}
	defer f.Close()
	return ReadLines(f, e)
}

// ProjectPath returns the drawing file the host is working on, as announced
// by a "file=" record. The host writes that record when the external
// program is started.
func ProjectPath(lines []string) (string, bool) {
	for _, line := range lines {
		if _, path, ok := strings.Cut(line, "file="); ok {
			return path, true
		}
	}
	return "", false
}
