package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/plctools/keptree/pkg/models"
)

// ErrNoTags is returned when an export is attempted on a hierarchy that
// contains no tags. Callers must not write an output file in that case.
var ErrNoTags = errors.New("hierarchy contains no tags to export")

// Header is the fixed 17-column header line the import tool expects,
// verbatim.
const Header = "Tag Name,Address,Data Type,Respect Data Type,Client Access,Scan Rate,Scaling,Raw Low,Raw High,Scaled Low,Scaled High,Scaled Data Type,Clamp Low,Clamp High,Eng Units,Description,Negate Value"

// rowSuffix fills the 14 columns after the data type: Respect Data Type=1,
// Client Access=R/W, Scan Rate=100, the remaining ten columns empty.
const rowSuffix = "1,R/W,100,,,,,,,,,,,"

// RenderCSV produces the full CSV text for an ordered tag list, allocating
// addresses in list order with a fresh allocator. Names are written as-is;
// the format has no quoting, so names containing commas will not survive
// the round trip through the import tool.
func RenderCSV(records []models.TagRecord) (string, error) {
	if len(records) == 0 {
		return "", ErrNoTags
	}

	alloc := NewAddressAllocator()
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n")
	for _, rec := range records {
		addr, err := alloc.Next(rec.DataType)
		if err != nil {
			return "", fmt.Errorf("render %q: %w", rec.FullName, err)
		}
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s\n", rec.FullName, addr, rec.DataType, rowSuffix))
	}
	return sb.String(), nil
}

// WriteCSV renders the tag list and writes it to w in one call.
func WriteCSV(w io.Writer, records []models.TagRecord) error {
	text, err := RenderCSV(records)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
