// Package cli wires configuration, schema, engine and output for the
// energymodel-translator command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"energymodel-translator/internal/config"
	"energymodel-translator/internal/engine"
	"energymodel-translator/internal/schema"
	"energymodel-translator/internal/target"
)

// Summary is the YAML report written after a translation.
type Summary struct {
	Objects  []ObjectSummary  `yaml:"objects"`
	Failures []FailureSummary `yaml:"failures,omitempty"`
	Warnings []string         `yaml:"warnings,omitempty"`
}

// ObjectSummary describes one object of the populated model.
type ObjectSummary struct {
	Kind      string         `yaml:"kind"`
	Name      string         `yaml:"name"`
	Parent    string         `yaml:"parent,omitempty"`
	Layers    []string       `yaml:"layers,omitempty"`
	Vertices  int            `yaml:"vertices,omitempty"`
	Attrs     map[string]any `yaml:"attrs,omitempty"`
	Autosized []string       `yaml:"autosized,omitempty"`
}

// FailureSummary describes one input record that did not materialize.
type FailureSummary struct {
	Path  string `yaml:"path,omitempty"`
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Error string `yaml:"error"`
}

// Run translates the configured input into a fresh in-memory model and writes
// the summary to out. It returns an error when the input cannot be translated
// or any record failed; the summary is written in both cases.
func Run(cfg config.Config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	sch, err := loadSchema(cfg.Schema)
	if err != nil {
		return err
	}

	engCfg := engine.DefaultConfig()
	engCfg.MaxDepth = cfg.MaxDepth

	eng, err := engine.New(sch, engine.WithLogger(logger), engine.WithConfig(engCfg))
	if err != nil {
		return err
	}

	raw, err := readInput(cfg.Input, in)
	if err != nil {
		return err
	}

	model := target.NewMemory()

	res, err := eng.Translate(model, raw)
	if res == nil {
		return fmt.Errorf("translate: %w", err)
	}

	if cfg.Dump {
		spew.Fdump(out, model.All())
	}

	if werr := yaml.NewEncoder(out).Encode(Summarize(model, res)); werr != nil {
		return fmt.Errorf("write summary: %w", werr)
	}

	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	if failed := res.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d records failed", len(failed), len(res.Outcomes))
	}

	return nil
}

func loadSchema(path string) (*schema.Schema, error) {
	if path == "" {
		return schema.Default()
	}

	return schema.LoadFile(path)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return raw, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return raw, nil
}

// Summarize reports every object in the model and every failed record.
func Summarize(model *target.Memory, res *engine.Result) Summary {
	var sum Summary

	for _, obj := range model.All() {
		sum.Objects = append(sum.Objects, objectSummary(obj))
	}

	for _, o := range res.Failed() {
		sum.Failures = append(sum.Failures, FailureSummary{
			Path:  o.Entry.Path,
			Type:  string(o.Entry.Type),
			Name:  o.Entry.Name,
			Error: o.Err.Error(),
		})
	}

	sum.Warnings = res.Diagnostics.WarningMessages()

	return sum
}

func objectSummary(obj target.Object) ObjectSummary {
	s := ObjectSummary{
		Kind:     obj.Kind().String(),
		Name:     obj.Name(),
		Vertices: len(obj.Vertices()),
	}

	if parent, ok := obj.Parent(); ok {
		s.Parent = parent.Name()
	}

	for _, layer := range obj.Layers() {
		s.Layers = append(s.Layers, layer.Name())
	}

	for _, a := range obj.Attrs() {
		if obj.IsAutosized(a) {
			s.Autosized = append(s.Autosized, string(a))
			continue
		}

		v, _ := obj.Attr(a)
		if ref, ok := v.(target.Object); ok {
			v = ref.Name()
		}

		if s.Attrs == nil {
			s.Attrs = make(map[string]any)
		}

		s.Attrs[string(a)] = v
	}

	return s
}
