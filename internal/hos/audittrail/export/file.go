// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
)

// ensure FileExporter implements Exporter at compile time.
var _ Exporter = (*FileExporter)(nil)

// FileExporter writes audit entries as JSON lines to a file.
type FileExporter struct {
	appFs  afero.Fs
	path   string
	file   afero.File
	writer *bufio.Writer
}

// NewFileExporter creates a new FileExporter for the given path.
func NewFileExporter(
	appFs afero.Fs,
	path string,
) *FileExporter {
	return &FileExporter{
		appFs: appFs,
		path:  path,
	}
}

// Open creates the output file and prepares for writing.
func (e *FileExporter) Open(
	_ context.Context,
) error {
	file, err := e.appFs.Create(e.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", e.path, err)
	}

	e.file = file
	e.writer = bufio.NewWriter(file)

	return nil
}

// Write appends one entry as a JSON line.
func (e *FileExporter) Write(
	_ context.Context,
	entry audittrail.Entry,
) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry %s: %w", entry.ID, err)
	}

	if _, err := e.writer.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write entry %s: %w", entry.ID, err)
	}

	return nil
}

// Close flushes buffered lines and closes the file.
func (e *FileExporter) Close(
	_ context.Context,
) error {
	if e.writer != nil {
		if err := e.writer.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	if e.file != nil {
		if err := e.file.Close(); err != nil {
			return fmt.Errorf("close: %w", err)
		}
	}

	return nil
}
