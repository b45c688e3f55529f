package trigger_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rewatch/internal/adapters/trigger"
)

type batches struct {
	mu  sync.Mutex
	got [][]string
}

func (b *batches) record(paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, paths)
}

func (b *batches) all() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func TestDebouncer_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := trigger.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/src/c.go")
		d.Add("/src/a.go")
		d.Add("/src/c.go")
		d.Add("/src/b.go")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []string{"/src/a.go", "/src/b.go", "/src/c.go"}, b.all()[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := trigger.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/src/a.go")
		time.Sleep(50 * time.Millisecond)
		d.Add("/src/b.go")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all(), "each addition restarts the quiet period")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Len(t, b.all(), 1)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := trigger.NewDebouncer(100*time.Millisecond, b.record)

		d.Flush()
		assert.Empty(t, b.all(), "nothing pending, nothing delivered")

		d.Add("/src/a.go")
		d.Flush()
		require.Len(t, b.all(), 1)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.all(), 1, "the cancelled timer does not deliver again")
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := trigger.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/src/a.go")
		d.Stop()
		d.Add("/src/b.go")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := trigger.NewDebouncer(50*time.Millisecond, nil)
		d.Add("/src/a.go")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
