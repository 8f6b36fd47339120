package matcher

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures the concurrent matcher tests leave no goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
