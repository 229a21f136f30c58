// Package log records a machine-readable trace of generator runs.
//
// Every stage of a ddi-gen run (fetch, parse, render, write, store) emits
// Events tagged with the run's UUID. The trace is separate from operational
// logging (slog): it is meant to be kept next to the generated artifacts and
// inspected later with the ddi-log command.
//
// # Basic Usage
//
//	// Console only
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// Console and file
//	file, _ := log.NewFileLogger("ddi-gen.dlog")
//	logger := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), file)
//
//	rec := log.NewRecorder(logger, uuid.NewString())
//	rec.Diagnostic(diag)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events using integer keys, with
// the .dlog extension.
package log
