package botpage

import (
	"context"
	"fmt"
	"go-botadmin/pkg/e"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Watcher re-fetches a page on a fixed interval and renders every result.
type Watcher struct {
	page      *Page
	out       io.Writer
	interval  time.Duration
	scheduler *gocron.Scheduler
	stopOnce  sync.Once
	now       func() time.Time
}

func NewWatcher(page *Page, out io.Writer, interval time.Duration) *Watcher {
	return &Watcher{
		page:     page,
		out:      out,
		interval: interval,
		now:      time.Now,
	}
}

// Start runs the first refresh right away and then one per interval until
// ctx is done or Stop is called. Runs never overlap.
func (w *Watcher) Start(ctx context.Context) error {
	sc := gocron.NewScheduler(time.UTC)
	sc.SingletonModeAll()

	_, err := sc.Every(w.interval).Do(w.tick, ctx)
	if err != nil {
		slog.Error(
			e.ErrScheduler.Error(),
			slog.String("error", err.Error()),
		)

		return e.With(e.ErrScheduler, err)
	}

	w.scheduler = sc
	sc.StartAsync()

	slog.Info("Watching Slack bot",
		slog.String("bot id", w.page.routeID),
		slog.Duration("interval", w.interval))

	go func() {
		<-ctx.Done()
		w.Stop()
	}()

	return nil
}

func (w *Watcher) Stop() {
	if w.scheduler == nil {
		return
	}

	w.stopOnce.Do(w.scheduler.Stop)
}

func (w *Watcher) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	w.page.Refresh(ctx)

	if _, err := fmt.Fprintf(w.out, "\n== %s ==\n", w.now().Format(time.RFC3339)); err != nil {
		slog.Error(e.ErrWrite.Error(), slog.String("error", err.Error()))

		return
	}

	if err := Render(w.out, w.page.View()); err != nil {
		slog.Error(e.ErrWrite.Error(), slog.String("error", err.Error()))
	}
}
