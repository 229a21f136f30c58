package arduino

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type file struct {
	path    string
	content string
}

func writeTree(t *testing.T, files []file) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.path))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(f.content), 0o644))
	}
	return root
}

func testOptions(root, out string) Options {
	return Options{
		SourceRoot: root,
		OutputDir:  out,
		Properties: Properties{
			Name:          "AgIsoStack",
			Version:       "0.1.0",
			License:       "MIT",
			Author:        "Jane Doe <jane@example.org>",
			Maintainer:    "Jane Doe <jane@example.org>",
			Sentence:      "A CAN stack.",
			Paragraph:     "Longer text.",
			Category:      "Communication",
			Architectures: "teensy",
			URL:           "https://example.org/lib",
		},
		Now: func() time.Time { return time.Date(2025, time.March, 5, 14, 7, 9, 0, time.UTC) },
	}
}

var sampleTree = []file{
	{"isobus/include/isobus/isobus/can_network_manager.hpp", "#include \"isobus/utility/event_dispatcher.hpp\"\n"},
	{"isobus/src/can_network_manager.cpp", "#include \"isobus/isobus/can_network_manager.hpp\"\n"},
	{"utility/include/isobus/utility/event_dispatcher.hpp", "#pragma once\n"},
	{"utility/include/isobus/utility/thread_synchronization.tpp", "#include \"isobus/utility/event_dispatcher.hpp\"\n"},
	{"hardware_integration/src/socket_can_interface.cpp", "// linux only\n"},
	{"hardware_integration/include/isobus/hardware_integration/available_can_drivers.hpp", ""},
	{"test/can_network_tests.cpp", "// excluded\n"},
	{"examples/vt/main.cpp", "// excluded\n"},
	{"build/CMakeFiles/3.22/CMakeCXXCompilerId.cpp", "// excluded\n"},
	{"README.md", "not a source\n"},
}

func TestPackage(t *testing.T) {
	root := writeTree(t, sampleTree)
	out := filepath.Join(t.TempDir(), "arduino_library")

	report, err := Package(context.Background(), testOptions(root, out))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"can_network_manager.hpp",
		"can_network_manager.cpp",
		"event_dispatcher.hpp",
		"thread_synchronization.tpp",
		"socket_can_interface.cpp",
		"available_can_drivers.hpp",
	}, report.Copied)
	assert.ElementsMatch(t, []string{"socket_can_interface.cpp", "available_can_drivers.hpp"}, report.Pruned)
	assert.Equal(t, []string{"can_network_manager.hpp", "event_dispatcher.hpp"}, report.Headers)
	assert.ElementsMatch(t, []string{"can_network_manager.hpp", "can_network_manager.cpp", "thread_synchronization.tpp"}, report.Patched)

	entries, err := os.ReadDir(filepath.Join(out, "src"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"AgIsoStack.hpp",
		"can_network_manager.hpp",
		"can_network_manager.cpp",
		"event_dispatcher.hpp",
		"thread_synchronization.tpp",
	}, names)

	src, err := os.ReadFile(filepath.Join(out, "src", "can_network_manager.cpp"))
	require.NoError(t, err)
	assert.Equal(t, "#include \"can_network_manager.hpp\"\n", string(src))
}

func TestUmbrellaHeader(t *testing.T) {
	root := writeTree(t, sampleTree)
	out := filepath.Join(t.TempDir(), "lib")

	report, err := Package(context.Background(), testOptions(root, out))
	require.NoError(t, err)

	data, err := os.ReadFile(report.Umbrella)
	require.NoError(t, err)
	got := string(data)

	assert.Contains(t, got, "** @file        AgIsoStack.hpp\n")
	assert.Contains(t, got, "** @date        March 05, 2025 at 14:07:09\n")
	assert.Contains(t, got, "** Copyright 2025 The AgIsoStack++ Developers\n")
	assert.Contains(t, got, "#ifndef AG_ISO_STACK_HPP\n#define AG_ISO_STACK_HPP\n\n"+
		"#include <can_network_manager.hpp>\n"+
		"#include <event_dispatcher.hpp>\n"+
		"\n#endif // AG_ISO_STACK_HPP\n")
	assert.NotContains(t, got, "available_can_drivers")
}

func TestLibraryProperties(t *testing.T) {
	root := writeTree(t, sampleTree)
	out := filepath.Join(t.TempDir(), "lib")

	report, err := Package(context.Background(), testOptions(root, out))
	require.NoError(t, err)

	data, err := os.ReadFile(report.Properties)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"name=AgIsoStack",
		"version=0.1.0",
		"license=MIT",
		"author=Jane Doe <jane@example.org>",
		"maintainer=Jane Doe <jane@example.org>",
		"sentence=A CAN stack.",
		"paragraph=Longer text.",
		"category=Communication",
		"architectures=teensy",
		"includes=AgIsoStack.hpp",
		"url=https://example.org/lib",
	}, lines)
}

func TestPackageReplacesPreviousOutput(t *testing.T) {
	root := writeTree(t, sampleTree)
	out := filepath.Join(t.TempDir(), "lib")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "src", "stale.hpp"), nil, 0o644))

	_, err := Package(context.Background(), testOptions(root, out))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "src", "stale.hpp"))
	assert.True(t, os.IsNotExist(err))
}

func TestPackageSkipsOutputInsideRoot(t *testing.T) {
	root := writeTree(t, sampleTree)
	out := filepath.Join(root, "arduino_library")

	_, err := Package(context.Background(), testOptions(root, out))
	require.NoError(t, err)

	report, err := Package(context.Background(), testOptions(root, out))
	require.NoError(t, err)
	assert.Empty(t, report.Overwritten)
}

func TestPackageCollision(t *testing.T) {
	root := writeTree(t, []file{
		{"a/util.hpp", "first\n"},
		{"b/util.hpp", "second\n"},
	})
	out := filepath.Join(t.TempDir(), "lib")

	report, err := Package(context.Background(), testOptions(root, out))
	require.NoError(t, err)
	assert.Equal(t, []string{"util.hpp"}, report.Copied)
	assert.Equal(t, []string{"util.hpp"}, report.Overwritten)

	data, err := os.ReadFile(filepath.Join(out, "src", "util.hpp"))
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestPackageNoSources(t *testing.T) {
	root := writeTree(t, []file{{"test/only_tests.cpp", ""}})

	_, err := Package(context.Background(), testOptions(root, filepath.Join(t.TempDir(), "lib")))
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestPackageCancelled(t *testing.T) {
	root := writeTree(t, sampleTree)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Package(ctx, testOptions(root, filepath.Join(t.TempDir(), "lib")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCustomPruneList(t *testing.T) {
	root := writeTree(t, sampleTree)
	opts := testOptions(root, filepath.Join(t.TempDir(), "lib"))
	opts.Prune = []string{"event_dispatcher.hpp"}

	report, err := Package(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"event_dispatcher.hpp"}, report.Pruned)
	assert.Equal(t, []string{"available_can_drivers.hpp", "can_network_manager.hpp"}, report.Headers)
}

func TestDefaultPruneListIsComplete(t *testing.T) {
	for _, name := range []string{
		"isobus_virtual_terminal_objects.cpp",
		"isobus_virtual_terminal_server.hpp",
		"CMakeCXXCompilerId.cpp",
	} {
		assert.Contains(t, DefaultPrune, name)
	}
	for _, name := range DefaultPrune {
		assert.NotContains(t, name, "\n")
		assert.False(t, strings.Count(name, ".") > 1, "%q looks like two names run together", name)
	}
}

func TestIncludeGuard(t *testing.T) {
	tests := map[string]string{
		"AgIsoStack.hpp": "AG_ISO_STACK_HPP",
		"isobus.hpp":     "ISOBUS_HPP",
		"CANStack.hpp":   "CANSTACK_HPP",
	}
	for in, want := range tests {
		assert.Equal(t, want, includeGuard(in), in)
	}
}
