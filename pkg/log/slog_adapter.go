package log

import (
	"context"
	"log/slog"
)

// SlogAdapter mirrors trace events onto an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event with its payload flattened into attributes.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("stage", event.Stage.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Fetch != nil:
		attrs = append(attrs,
			slog.String("url", event.Fetch.URL),
			slog.String("cache", event.Fetch.CachePath),
			slog.Int64("size", event.Fetch.Size),
		)
		if event.Fetch.ContentType != "" {
			attrs = append(attrs, slog.String("content_type", event.Fetch.ContentType))
		}
		if event.Fetch.Fingerprint != "" {
			attrs = append(attrs, slog.String("fingerprint", event.Fetch.Fingerprint))
		}
		if event.Fetch.Offline {
			attrs = append(attrs, slog.Bool("offline", true))
		}
	case event.Record != nil:
		attrs = append(attrs,
			slog.Uint64("ddi", uint64(event.Record.DDI)),
			slog.String("name", event.Record.Name),
			slog.Int("line", event.Record.Line),
		)
	case event.Diagnostic != nil:
		attrs = append(attrs,
			slog.Int("line", event.Diagnostic.Line),
			slog.String("kind", event.Diagnostic.Kind),
			slog.String("detail", event.Diagnostic.Message),
		)
		if event.Diagnostic.DDI != nil {
			attrs = append(attrs, slog.Uint64("ddi", uint64(*event.Diagnostic.DDI)))
		}
	case event.Artifact != nil:
		attrs = append(attrs,
			slog.String("path", event.Artifact.Path),
			slog.String("kind", event.Artifact.Kind),
			slog.Int("size", event.Artifact.Size),
			slog.Int("entries", event.Artifact.Entries),
		)
	case event.Summary != nil:
		attrs = append(attrs,
			slog.Int("entries", event.Summary.Entries),
			slog.Int("record_starts", event.Summary.RecordStarts),
			slog.Int("diagnostics", event.Summary.Diagnostics),
			slog.Int("lines", event.Summary.Lines),
		)
		if event.Summary.Duration > 0 {
			attrs = append(attrs, slog.Duration("duration", event.Summary.Duration))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
