package script

import (
	"fmt"
	"io"
	"os"

	"dockbox/pkg/layout"
	"dockbox/pkg/text"

	"github.com/dop251/goja"
)

// Engine runs scripts against a node tree between layout passes.
type Engine struct {
	vm *goja.Runtime

	// Stdout receives console.log; Stderr receives console.warn and
	// console.error.
	Stdout io.Writer
	Stderr io.Writer

	// Fonts and Measurer are given to labels created by scripts.
	Fonts    *text.Fonts
	Measurer text.Measurer
}

// New creates a new engine with a fresh goja runtime.
func New() *Engine {
	e := &Engine{
		vm:     goja.New(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	c := &consoleAPI{engine: e}
	c.register(e.vm)
	return e
}

// Execute binds document to root and runs scripts in order, stopping at the
// first error. Changes made by scripts take effect on the next layout.
func (e *Engine) Execute(root *layout.Node, scripts []string) error {
	registerDocument(e, root)

	for i, src := range scripts {
		if _, err := e.vm.RunString(src); err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
	}
	return nil
}
