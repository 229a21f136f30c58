// Package arduino repackages the AgIsoStack++ source tree as a flat Arduino
// library: sources are copied into <out>/src, platform specific drivers are
// pruned, an umbrella header and library.properties are generated and the
// nested include paths are rewritten to the flat layout.
package arduino

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"
)

// ErrNoSources is returned when the source root holds no eligible files.
var ErrNoSources = errors.New("no source files found")

// SourceExtensions are the file types copied into the library.
var SourceExtensions = []string{".cpp", ".hpp", ".tpp"}

// ExcludedDirs are matched as substrings of a directory's path relative to
// the source root. Matching directories are not copied from.
var ExcludedDirs = []string{"test", "examples", "CMakeFiles"}

// IncludePrefixes are stripped from every include in the flat layout.
var IncludePrefixes = []string{"isobus/isobus/", "isobus/utility/", "isobus/hardware_integration/"}

// DefaultPrune lists files that only build on desktop or other embedded
// platforms.
var DefaultPrune = []string{
	"iop_file_interface.cpp",
	"iop_file_interface.hpp",
	"available_can_drivers.hpp",
	"canal.h",
	"canal_a.h",
	"innomaker_usb2can_windows_plugin.hpp",
	"InnoMakerUsb2CanLib.h",
	"libusb.h",
	"mac_can_pcan_plugin.hpp",
	"mcp2515_can_interface.hpp",
	"pcan_basic_windows_plugin.hpp",
	"PCANBasic.h",
	"PCBUSB.h",
	"socket_can_interface.hpp",
	"spi_hardware_plugin.hpp",
	"spi_interface_esp.hpp",
	"spi_transaction_frame.hpp",
	"toucan_vscp_canal.hpp",
	"twai_plugin.hpp",
	"virtual_can_plugin.hpp",
	"innomaker_usb2can_windows_plugin.cpp",
	"mac_can_pcan_plugin.cpp",
	"mcp2515_can_interface.cpp",
	"pcan_basic_windows_plugin.cpp",
	"socket_can_interface.cpp",
	"spi_interface_esp.cpp",
	"spi_transaction_frame.cpp",
	"toucan_vscp_canal.cpp",
	"twai_plugin.cpp",
	"virtual_can_plugin.cpp",
	"can_hardware_interface.hpp",
	"can_hardware_interface.cpp",
	"socketcand_windows_network_client.hpp",
	"socketcand_windows_network_client.cpp",
	"isobus_virtual_terminal_objects.cpp",
	"isobus_virtual_terminal_objects.hpp",
	"isobus_virtual_terminal_server_managed_working_set.hpp",
	"isobus_virtual_terminal_server_managed_working_set.cpp",
	"isobus_virtual_terminal_server.cpp",
	"isobus_virtual_terminal_server.hpp",
	"CMakeCXXCompilerId.cpp",
}

// Properties are the library.properties fields.
type Properties struct {
	Name          string
	Version       string
	License       string
	Author        string
	Maintainer    string
	Sentence      string
	Paragraph     string
	Category      string
	Architectures string
	URL           string
}

// Options configures Package.
type Options struct {
	// SourceRoot is walked for sources.
	SourceRoot string

	// OutputDir is removed and recreated. It is skipped when it lies
	// inside SourceRoot.
	OutputDir string

	// Prune overrides DefaultPrune when non-nil.
	Prune []string

	Properties Properties

	Logger *slog.Logger

	// Now stamps the umbrella header. Defaults to time.Now.
	Now func() time.Time
}

// Report describes what Package did. File names are relative to the src
// directory.
type Report struct {
	OutputDir string

	Copied []string
	// Overwritten lists names found in more than one directory. The last
	// copy in walk order wins.
	Overwritten []string
	Pruned      []string
	Headers     []string
	Patched     []string

	Umbrella   string
	Properties string
}

// Package builds the Arduino library described by opts.
func Package(ctx context.Context, opts Options) (*Report, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Prune == nil {
		opts.Prune = DefaultPrune
	}
	if opts.Properties.Name == "" {
		return nil, errors.New("library name is required")
	}

	srcDir := filepath.Join(opts.OutputDir, "src")
	report := &Report{OutputDir: opts.OutputDir}

	if err := os.RemoveAll(opts.OutputDir); err != nil {
		return nil, fmt.Errorf("removing %s: %w", opts.OutputDir, err)
	}
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", srcDir, err)
	}
	opts.Logger.Info("created library directory", "path", srcDir)

	if err := copySources(ctx, opts, srcDir, report); err != nil {
		return nil, err
	}
	if len(report.Copied) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, opts.SourceRoot)
	}

	for _, name := range opts.Prune {
		err := os.Remove(filepath.Join(srcDir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("pruning %s: %w", name, err)
		}
		report.Pruned = append(report.Pruned, name)
		opts.Logger.Debug("pruned", "file", name)
	}

	retained, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, err
	}
	umbrella := opts.Properties.Name + ".hpp"
	var patch []string
	for _, d := range retained {
		name := d.Name()
		if d.IsDir() || !slices.Contains(SourceExtensions, filepath.Ext(name)) {
			continue
		}
		patch = append(patch, name)
		if filepath.Ext(name) == ".hpp" && name != umbrella {
			report.Headers = append(report.Headers, name)
		}
	}
	slices.Sort(report.Headers)

	now := opts.Now()
	header, err := renderTemplate("umbrella.hpp.tmpl", map[string]any{
		"File":    umbrella,
		"Library": opts.Properties.Name,
		"Date":    now.Format("January 02, 2006"),
		"Time":    now.Format("15:04:05"),
		"Year":    now.Year(),
		"Guard":   includeGuard(umbrella),
		"Headers": report.Headers,
	})
	if err != nil {
		return nil, err
	}
	report.Umbrella = filepath.Join(srcDir, umbrella)
	if err := os.WriteFile(report.Umbrella, header, 0o644); err != nil {
		return nil, err
	}

	props, err := renderTemplate("library.properties.tmpl", struct {
		Properties
		Includes string
	}{opts.Properties, umbrella})
	if err != nil {
		return nil, err
	}
	report.Properties = filepath.Join(opts.OutputDir, "library.properties")
	if err := os.WriteFile(report.Properties, props, 0o644); err != nil {
		return nil, err
	}

	for _, name := range patch {
		changed, err := FixIncludes(filepath.Join(srcDir, name))
		if err != nil {
			return nil, err
		}
		if changed {
			report.Patched = append(report.Patched, name)
		}
	}

	opts.Logger.Info("arduino library ready",
		"copied", len(report.Copied),
		"pruned", len(report.Pruned),
		"headers", len(report.Headers),
		"patched", len(report.Patched))
	return report, nil
}

func copySources(ctx context.Context, opts Options, dst string, report *Report) error {
	outAbs, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return err
	}
	seen := make(map[string]bool)

	return filepath.WalkDir(opts.SourceRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if abs, _ := filepath.Abs(path); abs == outAbs {
				return filepath.SkipDir
			}
			return nil
		}
		if !slices.Contains(SourceExtensions, filepath.Ext(path)) {
			return nil
		}
		rel, err := filepath.Rel(opts.SourceRoot, filepath.Dir(path))
		if err != nil {
			return err
		}
		if excluded(filepath.ToSlash(rel)) {
			return nil
		}

		name := d.Name()
		if err := copyFile(path, filepath.Join(dst, name)); err != nil {
			return fmt.Errorf("copying %s: %w", path, err)
		}
		if seen[name] {
			report.Overwritten = append(report.Overwritten, name)
			opts.Logger.Warn("file name collision, keeping the later copy", "file", name, "from", path)
		} else {
			seen[name] = true
			report.Copied = append(report.Copied, name)
		}
		opts.Logger.Debug("copied", "file", name)
		return nil
	})
}

func excluded(dir string) bool {
	for _, x := range ExcludedDirs {
		if strings.Contains(dir, x) {
			return true
		}
	}
	return false
}

// copyFile copies src to dst keeping its mode and modification time.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// FixIncludes strips IncludePrefixes from the file at path. It reports
// whether the file changed.
func FixIncludes(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	fixed := data
	for _, p := range IncludePrefixes {
		fixed = bytes.ReplaceAll(fixed, []byte(p), nil)
	}
	if bytes.Equal(fixed, data) {
		return false, nil
	}
	return true, os.WriteFile(path, fixed, 0o644)
}

// includeGuard turns "AgIsoStack.hpp" into "AG_ISO_STACK_HPP".
func includeGuard(file string) string {
	var b strings.Builder
	var prev rune
	for i, r := range file {
		switch {
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(prev):
			b.WriteByte('_')
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteByte('_')
		}
		prev = r
	}
	return b.String()
}
