package organizer

import (
	"testing"

	"go.uber.org/goleak"
)

// Watch spawns a watcher goroutine per call; make sure none outlive
// their test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
