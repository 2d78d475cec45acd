package termgrid

import (
	"testing"

	"dockbox/pkg/resource"
	"dockbox/pkg/text"
	"dockbox/pkg/widget"
)

func load(t *testing.T, content string, w, h int) *resource.Page {
	t.Helper()
	r := resource.NewDockRenderer(nil)
	r.SetMeasurer(CellMetrics{})
	page, err := r.Load(content, w, h, 72)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return page
}

func TestCellMetrics(t *testing.T) {
	m := CellMetrics{}
	if w, h := m.Measure("ab\n中文", text.Style{}, 12, 72); w != 4 || h != 2 {
		t.Errorf("Measure = %vx%v, want 4x2", w, h)
	}
	if a, lh := m.Metrics(text.Style{Bold: true}, 30, 300); a != 0 || lh != 1 {
		t.Errorf("Metrics = %v, %v, want 0, 1", a, lh)
	}

	tests := []struct {
		in    string
		width float64
		want  string
	}{
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := m.Truncate(tt.in, text.Style{}, 12, 72, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %v) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPaint_Boxes(t *testing.T) {
	page := load(t, `
<panel id="root" style="background: navy">
  <label id="title" style="dock: north; color: white">Hi there</label>
  <panel id="box" style="dock: west; min-width: 4; border: 1 solid red"/>
  <label id="body">中x</label>
</panel>`, 12, 5)

	g := Paint(page.Root(), 12, 5)
	want := []string{
		"Hi there    ",
		"┌──┐中x     ",
		"│  │        ",
		"│  │        ",
		"└──┘        ",
	}
	for y, row := range want {
		if got := g.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}

	title := g.At(0, 0)
	if title.FG == nil || title.BG == nil {
		t.Errorf("title cell = %+v, want label colour on root background", title)
	}
	if g.At(5, 1).Rune != 0 {
		t.Errorf("wide character continuation = %q", g.At(5, 1).Rune)
	}
}

func TestPaint_ScrollThumb(t *testing.T) {
	page := load(t, `
<scroll id="list">
  <label style="dock: north">row1</label>
  <label style="dock: north">row2</label>
  <label style="dock: north">row3</label>
  <label style="dock: north">row4</label>
  <label style="dock: north">row5</label>
  <label style="dock: north">row6</label>
</scroll>`, 5, 3)

	g := Paint(page.Root(), 5, 3)
	if got := g.Row(0); got != "row1┃" {
		t.Errorf("row 0 = %q", got)
	}
	if got := g.Row(2); got != "row3 " {
		t.Errorf("row 2 = %q", got)
	}

	page.Root().Content.(*widget.ScrollView).ScrollBy(0, 3)
	page.Layout(5, 3, 72)
	g = Paint(page.Root(), 5, 3)
	for y, row := range []string{"row4 ", "row5┃", "row6 "} {
		if got := g.Row(y); got != row {
			t.Errorf("scrolled row %d = %q, want %q", y, got, row)
		}
	}
}

func TestPaint_DisabledRoot(t *testing.T) {
	page := load(t, `<panel style="background: red"/>`, 3, 2)
	page.Root().SetEnabled(false)
	g := Paint(page.Root(), 3, 2)
	if got := g.Row(0); got != "   " || g.At(0, 0).BG != nil {
		t.Errorf("disabled root painted %q %+v", got, g.At(0, 0))
	}
}

func TestThumb(t *testing.T) {
	tests := []struct {
		size, content, pos int
		start, length      int
	}{
		{3, 6, 0, 0, 1},
		{3, 6, 3, 1, 1},
		{10, 20, 10, 5, 5},
		{4, 100, 96, 3, 1},
	}
	for _, tt := range tests {
		start, length := thumb(tt.size, tt.content, tt.pos)
		if start != tt.start || length != tt.length {
			t.Errorf("thumb(%d, %d, %d) = %d, %d, want %d, %d",
				tt.size, tt.content, tt.pos, start, length, tt.start, tt.length)
		}
	}
}
