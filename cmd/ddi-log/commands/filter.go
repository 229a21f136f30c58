package commands

import (
	"fmt"
	"io"

	"github.com/open-agriculture/isobus-ddi/pkg/log"
)

// RunFilter copies matching events into a new trace file and returns how
// many were written.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	out, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out.Written(), fmt.Errorf("failed to read event: %w", err)
		}
		out.Log(event)
	}
	return out.Written(), nil
}
