package safe_test

import (
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/labelbot/pkg/utils/safe"
)

func TestClose(t *testing.T) {
	t.Run("nil closer does not panic", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("closing twice only logs", func(t *testing.T) {
		fd := gt.R1(os.CreateTemp(t.TempDir(), "safe-*")).NoError(t)
		safe.Close(fd)
		safe.Close(fd)
	})
}
