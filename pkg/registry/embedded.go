package registry

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/licenses.json
var embeddedLicenses []byte

//go:embed data/exceptions.json
var embeddedExceptions []byte

var (
	embeddedOnce sync.Once
	embeddedList *List
)

// Embedded returns the registry built from the license-list snapshot
// compiled into the binary. Use Load to pick up a newer license-list
// release without rebuilding.
//
// The list is parsed once and shared; List is immutable so the shared value
// is safe for concurrent use.
func Embedded() *List {
	embeddedOnce.Do(func() {
		l, err := Parse(embeddedLicenses, embeddedExceptions)
		if err != nil {
			// The snapshot is validated by tests; failing to parse it
			// means the binary itself is broken.
			panic(fmt.Sprintf("registry: embedded license list is invalid: %v", err))
		}
		embeddedList = l
	})
	return embeddedList
}
