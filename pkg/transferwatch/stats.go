package transferwatch

import (
	"fmt"
	"time"

	"bytewatch/pkg/bytesize"
)

// Stats is an immutable snapshot of a TransferWatch as of one instant.
type Stats struct {
	Total       bytesize.ByteSize `json:"total"`
	Elapsed     time.Duration     `json:"elapsed"`
	Current     bytesize.Rate     `json:"current"`
	Average     bytesize.Rate     `json:"average"`
	Peak        bytesize.Rate     `json:"peak"`
	Instant     bytesize.Rate     `json:"instant"`
	SampleCount int               `json:"sample_count"`
}

// String renders a one-line summary suitable for progress output.
func (s Stats) String() string {
	return fmt.Sprintf("%s in %.1fs | cur %s avg %s peak %s",
		s.Total, s.Elapsed.Seconds(), s.Current, s.Average, s.Peak)
}
