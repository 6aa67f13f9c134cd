package bytesize

import (
	"fmt"
	"os"
)

// FromFile returns the size of the file at path as a ByteSize. The underlying
// os.Stat error is wrapped, so errors.Is(err, fs.ErrNotExist) works for
// missing files.
func FromFile(path string) (ByteSize, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Zero, fmt.Errorf("failed to get file info: %w", err)
	}
	return New(stat.Size()), nil
}
