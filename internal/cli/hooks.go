package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgdoc/pkg/observability"
)

// logHooks reports render events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

// Hooks returns render hooks that log through the CLI logger.
// Register them with observability.SetRenderHooks.
func (c *CLI) Hooks() observability.RenderHooks {
	return logHooks{logger: c.Logger}
}

func (h logHooks) OnSceneLoad(_ context.Context, source string, elements int, err error) {
	if err != nil {
		h.logger.Debug("Scene load failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("Loaded scene", "source", source, "elements", elements)
}

func (h logHooks) OnBuild(_ context.Context, elements int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Build failed", "err", err)
		return
	}
	h.logger.Debug("Built document", "elements", elements, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnWrite(_ context.Context, path string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Write failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("Wrote document", "path", path, "bytes", size, "took", d.Round(time.Microsecond))
}
