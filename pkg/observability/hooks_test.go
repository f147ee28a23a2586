package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingHooks struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnSceneLoad(context.Context, string, int, error) { h.record("load") }
func (h *recordingHooks) OnBuild(context.Context, int, time.Duration, error) {
	h.record("build")
}
func (h *recordingHooks) OnWrite(context.Context, string, int, time.Duration, error) {
	h.record("write")
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopRenderHooks{}
	h.OnSceneLoad(ctx, "drawing.toml", 3, nil)
	h.OnBuild(ctx, 3, time.Millisecond, nil)
	h.OnWrite(ctx, "drawing.svg", 512, time.Millisecond, errors.New("disk full"))
}

func TestRenderHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	custom := &recordingHooks{}
	SetRenderHooks(custom)
	if Render() != custom {
		t.Error("SetRenderHooks should set custom hooks")
	}

	SetRenderHooks(nil)
	if Render() != custom {
		t.Error("SetRenderHooks(nil) should keep the current hooks")
	}

	ctx := context.Background()
	Render().OnSceneLoad(ctx, "-", 1, nil)
	Render().OnBuild(ctx, 1, 0, nil)
	Render().OnWrite(ctx, "-", 10, 0, nil)
	if got := len(custom.events); got != 3 {
		t.Errorf("recorded %d events, want 3", got)
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetRenderHooks(&recordingHooks{})
		}()
		go func() {
			defer wg.Done()
			Render().OnBuild(context.Background(), 0, 0, nil)
		}()
	}
	wg.Wait()
}
