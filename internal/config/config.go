// Package config loads the YAML settings shared by the ddi-gen,
// arduino-pack, docs-build and ddi-web commands. Command-line flags
// override values loaded here.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/open-agriculture/isobus-ddi/pkg/docbuild"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root of a configuration file.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Arduino   ArduinoConfig   `yaml:"arduino"`
	Docs      DocsConfig      `yaml:"docs"`
	Web       WebConfig       `yaml:"web"`
}

// GeneratorConfig drives ddi-gen.
type GeneratorConfig struct {
	URL       string        `yaml:"url"`
	CachePath string        `yaml:"cache_path"`
	Timeout   time.Duration `yaml:"timeout"`
	Offline   bool          `yaml:"offline"`

	HeaderPath string `yaml:"header_path"`
	SourcePath string `yaml:"source_path"`
	// GoPath is optional; the Go table is only rendered when set.
	GoPath string `yaml:"go_path"`

	Authors     []string `yaml:"authors"`
	Copyright   string   `yaml:"copyright"`
	Namespace   string   `yaml:"namespace"`
	IncludePath string   `yaml:"include_path"`
	GoPackage   string   `yaml:"go_package"`

	TracePath string `yaml:"trace_path"`
	HistoryDB string `yaml:"history_db"`
}

// ArduinoConfig drives arduino-pack.
type ArduinoConfig struct {
	SourceRoot string   `yaml:"source_root"`
	OutputDir  string   `yaml:"output_dir"`
	Prune      []string `yaml:"prune"`

	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	License      string `yaml:"license"`
	Author       string `yaml:"author"`
	Maintainer   string `yaml:"maintainer"`
	Sentence     string `yaml:"sentence"`
	Paragraph    string `yaml:"paragraph"`
	Category     string `yaml:"category"`
	Architecture string `yaml:"architectures"`
	URL          string `yaml:"url"`
}

// DocsConfig drives docs-build.
type DocsConfig struct {
	docbuild.Config `yaml:",inline"`

	ConfPath   string `yaml:"conf_path"`
	DoxygenDir string `yaml:"doxygen_dir"`
}

// WebConfig drives ddi-web.
type WebConfig struct {
	Listen    string `yaml:"listen"`
	Advertise bool   `yaml:"advertise"`
	Instance  string `yaml:"instance"`
}

// Default returns the settings used when no file is given. They reproduce
// the layout of the AgIsoStack++ repository.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			URL:         "https://www.isobus.net/isobus/exports/completeTXT",
			CachePath:   "export.txt",
			Timeout:     2 * time.Minute,
			HeaderPath:  "isobus_data_dictionary.hpp",
			SourcePath:  "isobus_data_dictionary.cpp",
			Authors:     []string{"Adrian Del Grosso", "Daan Steenbergen"},
			Namespace:   "isobus",
			IncludePath: "isobus/isobus/isobus_data_dictionary.hpp",
			GoPackage:   "ddi",
		},
		Arduino: ArduinoConfig{
			SourceRoot:   ".",
			OutputDir:    "arduino_library",
			Name:         "AgIsoStack",
			Version:      "0.1.0",
			License:      "MIT",
			Author:       "Adrian Del Grosso <delgrossoengineering@protonmail.com>",
			Maintainer:   "Adrian Del Grosso <delgrossoengineering@protonmail.com>",
			Sentence:     "A free ISOBUS (ISO11783) and J1939 CAN Stack for Teensy.",
			Paragraph:    "Includes ISOBUS virtual terminal client, task controller client, and transport layer functionality. Based on the CMake AgIsoStack++ at https://github.com/Open-Agriculture/AgIsoStack-plus-plus.",
			Category:     "Communication",
			Architecture: "teensy",
			URL:          "https://github.com/Open-Agriculture/AgIsoStack-Arduino",
		},
		Docs: DocsConfig{
			Config: docbuild.Config{
				Project:   "AgIsoStack++",
				Copyright: "2022-2023, The Open-Agriculture Developers",
				Author:    "Adrian Del Grosso, Daan Steenbergen",
				Release:   "1.0.0",
				Extensions: []string{
					"breathe",
					"sphinx.ext.imgmath",
					"sphinx.ext.todo",
					"sphinx.ext.graphviz",
					"sphinxext.opengraph",
					"sphinx_copybutton",
				},
				Theme:          "sphinx_rtd_theme",
				BreatheProject: "AgIsoStack",
				BreatheXMLPath: "../doxyxml/",
			},
			ConfPath:   "sphinx/source/conf.py",
			DoxygenDir: ".",
		},
		Web: WebConfig{
			Listen:   ":8080",
			Instance: "ISOBUS DDI",
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings every command relies on.
func (c *Config) Validate() error {
	var problems []string

	g := c.Generator
	if g.URL != "" && !strings.HasPrefix(g.URL, "http://") && !strings.HasPrefix(g.URL, "https://") {
		problems = append(problems, fmt.Sprintf("generator.url %q is not an http(s) URL", g.URL))
	}
	if g.CachePath == "" {
		problems = append(problems, "generator.cache_path is required")
	}
	if g.Timeout < 0 {
		problems = append(problems, "generator.timeout must not be negative")
	}
	if g.HeaderPath == "" || g.SourcePath == "" {
		problems = append(problems, "generator.header_path and generator.source_path are required")
	}
	if g.Namespace != "" && !isIdentifier(g.Namespace) {
		problems = append(problems, fmt.Sprintf("generator.namespace %q is not a C++ identifier", g.Namespace))
	}
	if g.GoPackage != "" && !isIdentifier(g.GoPackage) {
		problems = append(problems, fmt.Sprintf("generator.go_package %q is not a Go identifier", g.GoPackage))
	}

	if c.Arduino.OutputDir == "" {
		problems = append(problems, "arduino.output_dir is required")
	}
	if c.Arduino.Name == "" {
		problems = append(problems, "arduino.name is required")
	}

	if c.Web.Listen != "" {
		if _, _, err := net.SplitHostPort(c.Web.Listen); err != nil {
			problems = append(problems, fmt.Sprintf("web.listen %q: %v", c.Web.Listen, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}
