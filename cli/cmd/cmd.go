package cmd

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/pyscribe/py"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens a command input file, mapping [stdinSource] to stdin.
// The returned closer is a no-op for stdin.
func openSource(path string) (io.ReadCloser, error) {
	if path == stdinSource {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrReadSource.Wrap(err)
	}

	return file, nil
}

// assemble feeds source text through the builder line by line.
// Lines pass verbatim; the builder's indentation cursor stays at zero so
// the original layout is preserved.
func assemble(r io.Reader, opts ...py.Option) (*py.Program, error) {
	p := py.New(opts...)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		p.WriteLine(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, ErrReadSource.Wrap(err)
	}

	return p, nil
}

// decodeSeries reads a data series from path, decoding by file extension:
// .json uses JSON, everything else uses YAML.
func decodeSeries(path string) (py.Value, error) {
	file, err := openSource(path)
	if err != nil {
		return py.Value{}, err
	}
	defer file.Close()

	var val py.Value

	if strings.EqualFold(filepath.Ext(path), ".json") {
		val, err = py.FromJSON(file)
	} else {
		val, err = py.FromYAML(file)
	}

	if err != nil {
		return py.Value{}, ErrDecodeData.Wrap(err)
	}

	return val, nil
}
