// SPDX-License-Identifier: EPL-2.0

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ik5/wavedraw/envelope"
)

// WriteEnvelopeCSV writes both envelope curves as CSV rows with an
// Index,Positive,Negative header. One row per sample index.
func WriteEnvelopeCSV(w io.Writer, snap envelope.Snapshot) error {
	cw := csv.NewWriter(w)

	err := cw.Write([]string{"Index", "Positive", "Negative"})
	if err != nil {
		return fmt.Errorf("csv header: %w", err)
	}

	for i := 0; i < snap.Len(); i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(snap.Positive[i], 'g', -1, 64),
			strconv.FormatFloat(snap.Negative[i], 'g', -1, 64),
		}

		err = cw.Write(row)
		if err != nil {
			return fmt.Errorf("csv row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
