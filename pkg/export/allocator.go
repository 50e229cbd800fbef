// Package export turns a flattened tag list into the fixed-column CSV
// consumed by the Kepware tag import, allocating device addresses along
// the way.
package export

import (
	"fmt"

	"github.com/plctools/keptree/pkg/models"
)

// AddressAllocator hands out device addresses per data type. Each export
// uses a fresh allocator, so addresses depend only on the order of calls:
//
//	string  -> S001, S002, ...           (one register per tag)
//	integer -> D0000, D0001, ...         (one word per tag)
//	boolean -> D0000.0 ... D0000.15,     (packed 16 bits per word)
//	           D0001.0, ...
//
// The three counters never affect each other.
type AddressAllocator struct {
	stringCount int
	intCount    int
	boolWord    int
	boolBit     int
}

// NewAddressAllocator returns an allocator with all counters at their
// starting positions.
func NewAddressAllocator() *AddressAllocator {
	return &AddressAllocator{}
}

// Next allocates the address for the next tag of the given type.
func (a *AddressAllocator) Next(dataType models.DataType) (string, error) {
	switch dataType {
	case models.TypeString:
		a.stringCount++
		return fmt.Sprintf("S%03d", a.stringCount), nil
	case models.TypeInteger:
		addr := fmt.Sprintf("D%04d", a.intCount)
		a.intCount++
		return addr, nil
	case models.TypeBoolean:
		addr := fmt.Sprintf("D%04d.%d", a.boolWord, a.boolBit)
		a.boolBit++
		if a.boolBit == 16 {
			a.boolBit = 0
			a.boolWord++
		}
		return addr, nil
	default:
		return "", fmt.Errorf("allocate address: unknown data type %q", dataType)
	}
}
