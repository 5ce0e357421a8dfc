package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
	"hearsay/contract"
	"hearsay/domain/event"
)

var _ contract.Worker = (*TelemetryWorker)(nil)

// TelemetryWorker drains the telemetry channel through the configured event
// handlers and, on every metric interval, samples the engine's own process
// with gopsutil so dispatch load shows up next to dispatch events.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	telemetry      chan event.Event
	handlers       []event.Handler
}

func NewTelemetryWorker(log *slog.Logger, metricInterval time.Duration,
	telemetry chan event.Event, handlers []event.Handler) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		telemetry:      telemetry,
		handlers:       handlers,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case evt, ok := <-w.telemetry:
			if !ok {
				w.log.Debug("Telemetry channel is closed")
				return nil
			}
			w.handle(evt)
		case <-ticker.C:
			if stats, ok := w.sample(); ok {
				w.handle(event.New(event.ProcessStatsType, stats))
			}
		}
	}
}

func (w *TelemetryWorker) handle(evt event.Event) {
	for _, h := range w.handlers {
		h.Handle(evt)
	}
}

// sample reads CPU and RAM usage of the current process.
func (w *TelemetryWorker) sample() (event.ProcessStats, bool) {
	pid := int32(os.Getpid())
	p, err := process.NewProcess(pid)
	if err != nil {
		w.log.Debug("Error while retrieving own process", "pid", pid, "err", err)
		return event.ProcessStats{}, false
	}
	status, err := p.Status()
	if err != nil {
		w.log.Error("Error while finding process status", "err", err)
		return event.ProcessStats{}, false
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "err", err)
		return event.ProcessStats{}, false
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		w.log.Error("Error while finding process ram usage", "err", err)
		return event.ProcessStats{}, false
	}
	return event.ProcessStats{PID: pid, Status: status, Cpu: cpu, Ram: ram}, true
}
