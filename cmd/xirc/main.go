// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"xir/internal/diag"
	"xir/internal/frontend"
	"xir/internal/frontend/semantic"
	"xir/internal/xir"
	"xir/internal/xir/text"
)

// Config is the shape of an optional --config file: command-line flags
// that are tedious to repeat per invocation, plus the ordered transform
// pipeline to run over the translated module before printing it.
type Config struct {
	DebugInfo bool     `yaml:"debug_info"`
	JSON      bool     `yaml:"json"`
	Pipeline  []string `yaml:"pipeline"`
}

// passes maps a --config pipeline entry to the internal/xir transform it
// runs over the whole module, in the order SPEC_FULL.md's CLI description
// ("optionally run a transform pipeline") calls for.
var passes = map[string]func(*xir.Module){
	"dce":            func(m *xir.Module) { xir.DCERunOnModule(m) },
	"store_forward":  func(m *xir.Module) { xir.StoreForwardRunOnModule(m) },
	"load_elim":      func(m *xir.Module) { xir.LoadEliminationRunOnModule(m) },
	"peephole":       func(m *xir.Module) { xir.PeepholeStoreForwardRunOnModule(m) },
	"trace_gep":      func(m *xir.Module) { xir.TraceGEPRunOnModule(m) },
	"sink_alloca":    func(m *xir.Module) { xir.SinkAllocaRunOnModule(m) },
	"outline":        func(m *xir.Module) { xir.OutlineRunOnModule(m) },
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: xirc [--config path.yaml] <file.xk>")
		os.Exit(1)
	}

	cfg := Config{}
	args := os.Args[1:]
	if args[0] == "--config" {
		if len(args) < 3 {
			fmt.Println("Usage: xirc --config path.yaml <file.xk>")
			os.Exit(1)
		}
		loadConfig(args[1], &cfg)
		args = args[2:]
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	moduleName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	mod, errs := frontend.CompileSource(path, string(source), moduleName)
	if len(errs) > 0 {
		reportCompileErrors(path, string(source), errs)
		os.Exit(1)
	}

	for _, name := range cfg.Pipeline {
		pass, ok := passes[name]
		if !ok {
			color.Red("unknown pipeline pass %q", name)
			os.Exit(1)
		}
		pass(mod)
	}

	if cfg.JSON {
		out, err := xir.ToJSON(mod)
		if err != nil {
			color.Red("failed to render JSON: %s", err)
			os.Exit(1)
		}
		fmt.Println(out)
	} else {
		fmt.Println(text.Print(mod, cfg.DebugInfo))
	}

	if supportsColor() {
		color.Green("✅ Successfully compiled %s", path)
	} else {
		fmt.Printf("Successfully compiled %s\n", path)
	}
}

func loadConfig(path string, cfg *Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read config: %s", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		color.Red("invalid config: %s", err)
		os.Exit(1)
	}
}

func supportsColor() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// reportCompileErrors renders every error frontend.CompileSource returned,
// choosing a rendering strategy per concrete error type: participle syntax
// errors carry their own Position, semantic.Error carries an ast.Position,
// and a *frontend.CompileError wraps a *xir.VerificationError that
// internal/diag already knows how to turn into a Diagnostic.
func reportCompileErrors(path, source string, errs []error) {
	reporter := diag.NewReporter(path, source)
	for _, err := range errs {
		switch e := err.(type) {
		case participle.Error:
			pos := e.Position()
			reporter = diag.NewReporter(pos.Filename, source)
			fmt.Print(reporter.Format(diag.Diagnostic{
				Level:    diag.LevelError,
				Message:  e.Message(),
				Position: diag.Position{Line: pos.Line, Column: pos.Column},
				Length:   1,
			}))
		case semantic.Error:
			fmt.Print(reporter.Format(diag.Diagnostic{
				Level:    diag.LevelError,
				Message:  e.Message,
				Position: diag.Position{Line: e.Pos.Line, Column: e.Pos.Column},
				Length:   1,
			}))
		case *frontend.CompileError:
			pos := diag.Position{Line: e.Pos.Line, Column: e.Pos.Column}
			fmt.Print(reporter.Format(diag.FromVerificationError(e.Err, pos)))
		default:
			color.Red("error: %s", err)
		}
	}
}
