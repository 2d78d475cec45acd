// Command dockterm previews a markup document in the terminal. Each cell is
// one layout pixel; the page is laid out again when the terminal resizes.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	"dockbox/pkg/inspect"
	"dockbox/pkg/layout"
	"dockbox/pkg/resource"
	"dockbox/pkg/script"
	"dockbox/pkg/termgrid"
	"dockbox/pkg/widget"
)

func main() {
	dpi := flag.Float64("dpi", 9, "layout resolution; 9 makes a cell 8 points wide")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dockterm [flags] <input.dock>\n\nKeys: arrows scroll, click inspects, q or Esc quits.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *dpi); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// statusLog keeps the last line written to it.
type statusLog struct {
	last string
}

func (s *statusLog) Write(b []byte) (int, error) {
	if line := strings.TrimSpace(string(b)); line != "" {
		s.last = line
	}
	return len(b), nil
}

// captureLog sends the standard logger to a statusLog until restore is called.
func captureLog() (logs *statusLog, restore func()) {
	logs = &statusLog{}
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(logs)
	log.SetFlags(0)
	return logs, func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	}
}

type preview struct {
	screen tcell.Screen
	page   *resource.Page
	dpi    float64
	status string
}

func run(path string, dpi float64) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Log output would land on top of the screen; keep the last line for the
	// status row instead.
	logs, restore := captureLog()
	defer restore()

	renderer := resource.NewDockRenderer(resource.FileFetcher{Dir: filepath.Dir(path)})
	renderer.SetMeasurer(termgrid.CellMetrics{})
	engine := script.New()
	// The screen owns the terminal; console output would corrupt it.
	engine.Stdout, engine.Stderr = io.Discard, io.Discard
	renderer.SetScriptEngine(engine)

	w, h := screen.Size()
	page, err := renderer.Load(string(content), w, max(1, h-1), dpi)
	if err != nil {
		return err
	}

	p := &preview{screen: screen, page: page, dpi: dpi, status: path}
	if logs.last != "" {
		p.status = path + ": " + logs.last
	}
	for {
		p.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			p.relayout()
			screen.Sync()
		case *tcell.EventKey:
			if !p.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				x, y := ev.Position()
				p.inspect(x, y)
			}
		}
	}
}

func (p *preview) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
	case tcell.KeyUp:
		p.scroll(0, -1)
	case tcell.KeyDown:
		p.scroll(0, 1)
	case tcell.KeyLeft:
		p.scroll(-1, 0)
	case tcell.KeyRight:
		p.scroll(1, 0)
	case tcell.KeyPgUp:
		_, h := p.screen.Size()
		p.scroll(0, -max(1, h-2))
	case tcell.KeyPgDn:
		_, h := p.screen.Size()
		p.scroll(0, max(1, h-2))
	}
	return true
}

// scroll moves the first scroll view in the page.
func (p *preview) scroll(dx, dy int) {
	if sv := firstScrollView(p.page.Root()); sv != nil {
		sv.ScrollBy(dx, dy)
		p.relayout()
	}
}

func firstScrollView(root *layout.Node) *widget.ScrollView {
	var found *widget.ScrollView
	root.Walk(func(n *layout.Node, _ int) bool {
		if found != nil {
			return false
		}
		if sv, ok := n.Content.(*widget.ScrollView); ok {
			found = sv
			return false
		}
		return true
	})
	return found
}

func (p *preview) inspect(x, y int) {
	if n := p.page.Root().HitTest(x, y); n != nil {
		p.status = inspect.Line(n)
	} else {
		p.status = ""
	}
}

func (p *preview) relayout() {
	w, h := p.screen.Size()
	p.page.Layout(w, max(1, h-1), p.dpi)
}

func (p *preview) draw() {
	w, h := p.screen.Size()
	p.screen.Clear()

	grid := termgrid.Paint(p.page.Root(), w, max(1, h-1))
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := grid.At(x, y)
			if c.Rune == 0 {
				continue
			}
			p.screen.SetContent(x, y, c.Rune, nil, cellStyle(c))
		}
	}

	statusStyle := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range p.status {
		if col >= w {
			break
		}
		p.screen.SetContent(col, h-1, r, nil, statusStyle)
		col++
	}
	for ; col < w; col++ {
		p.screen.SetContent(col, h-1, ' ', nil, statusStyle)
	}
	p.screen.Show()
}

func cellStyle(c termgrid.Cell) tcell.Style {
	style := tcell.StyleDefault
	if c.FG != nil {
		style = style.Foreground(tcellColor(c.FG))
	}
	if c.BG != nil {
		style = style.Background(tcellColor(c.BG))
	}
	return style
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
