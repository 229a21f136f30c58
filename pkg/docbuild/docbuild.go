// Package docbuild prepares the Sphinx and Breathe documentation build:
// it renders conf.py from a Config and runs the Doxygen XML extraction on
// Read the Docs builders.
package docbuild

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"text/template"

	"github.com/open-agriculture/isobus-ddi/internal/atomicfile"
)

// ReadTheDocsEnv is set to "True" by Read the Docs builders.
const ReadTheDocsEnv = "READTHEDOCS"

// Config describes the Sphinx project.
type Config struct {
	Project        string   `yaml:"project"`
	Copyright      string   `yaml:"copyright"`
	Author         string   `yaml:"author"`
	Release        string   `yaml:"release"`
	Extensions     []string `yaml:"extensions"`
	Theme          string   `yaml:"theme"`
	BreatheProject string   `yaml:"breathe_project"`
	BreatheXMLPath string   `yaml:"breathe_xml_path"`

	// PrepareCommand, when set, is run by conf.py on Read the Docs builders
	// before Sphinx reads the sources, typically
	// ["docs-build", "prepare"]. Leave it empty when the build runs
	// docs-build prepare as a separate pre-build step.
	PrepareCommand []string `yaml:"prepare_command"`
}

// Validate checks the fields conf.py cannot do without.
func (c Config) Validate() error {
	var errs []error
	if c.Project == "" {
		errs = append(errs, errors.New("project is required"))
	}
	if c.Theme == "" {
		errs = append(errs, errors.New("theme is required"))
	}
	if c.BreatheProject == "" || c.BreatheXMLPath == "" {
		errs = append(errs, errors.New("breathe project and xml path are required"))
	}
	return errors.Join(errs...)
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"py": strconv.Quote,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// RenderSphinxConf returns the content of conf.py.
func RenderSphinxConf(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sphinx config: %w", err)
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "conf.py.tmpl", cfg); err != nil {
		return nil, fmt.Errorf("executing template conf.py.tmpl: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteSphinxConf renders conf.py and atomically writes it to path.
func WriteSphinxConf(ctx context.Context, path string, cfg Config) error {
	data, err := RenderSphinxConf(cfg)
	if err != nil {
		return err
	}
	return atomicfile.WriteBytes(ctx, path, data, 0o644)
}

// Runner runs name with args in dir and returns its combined output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs the command as a subprocess.
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// PrepareOptions configures Prepare.
type PrepareOptions struct {
	// DoxygenDir holds the Doxyfile.
	DoxygenDir string

	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	// Run defaults to ExecRunner.
	Run Runner
}

// Prepare generates the Doxygen XML that Breathe reads when running on a
// Read the Docs builder. Elsewhere it does nothing and reports false.
func Prepare(ctx context.Context, opts PrepareOptions) (bool, error) {
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Run == nil {
		opts.Run = ExecRunner
	}
	if opts.Getenv(ReadTheDocsEnv) != "True" {
		return false, nil
	}

	out, err := opts.Run(ctx, opts.DoxygenDir, "doxygen")
	if err != nil {
		return true, fmt.Errorf("doxygen failed: %w; output: %s", err, out)
	}
	return true, nil
}
