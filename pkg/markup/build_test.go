package markup

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dockbox/pkg/css"
	"dockbox/pkg/layout"
	"dockbox/pkg/widget"
)

const dashboard = `
<style>
  .bar { padding: 2 4; background: #eee }
  #status { dock: south }
</style>
<panel id="root" style="min-width: 200; min-height: 100">
  <label id="title" class="bar" style="dock: north; font-weight: bold">Dashboard</label>
  <label id="status" class="bar">ready</label>
  <panel id="side" style="dock: west; min-width: 40; border: 1 solid navy"/>
  <scroll id="body" style="min-height: 20">
    <label id="row1" style="dock: north">one</label>
    <label id="row2" style="dock: north" disabled>two</label>
  </scroll>
</panel>`

func TestParse_Dashboard(t *testing.T) {
	tree, err := Parse(dashboard, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := tree.Root
	if root.Name != "root" || root.Rule != layout.RuleFill || root.MinSizeX != 200 {
		t.Errorf("root = %+v", root)
	}
	if len(root.Children) != 4 {
		t.Fatalf("root has %d children", len(root.Children))
	}

	title := root.Find("title")
	if title.Rule != layout.RuleNorth {
		t.Errorf("title rule = %v", title.Rule)
	}
	if title.Padding != (layout.Edges{West: 4, East: 4, North: 2, South: 2}) {
		t.Errorf("title padding = %+v", title.Padding)
	}
	label := title.Content.(*widget.Label)
	if label.Text != "Dashboard" || !label.Style.Bold {
		t.Errorf("title label = %+v", label)
	}
	if label.Background != (css.Color{R: 0xee, G: 0xee, B: 0xee}) {
		t.Errorf("title background = %v", label.Background)
	}

	if status := root.Find("status"); status.Rule != layout.RuleSouth {
		t.Errorf("status rule = %v", status.Rule)
	}
	side := root.Find("side").Content.(*widget.Panel)
	if side.Border != (css.Color{B: 128}) {
		t.Errorf("side border = %v", side.Border)
	}

	body := root.Find("body")
	if _, ok := body.Content.(*widget.ScrollView); !ok || !body.CanScrollY || body.CanScrollX {
		t.Errorf("body = %+v", body)
	}
	if root.Find("row2").Enabled() {
		t.Error("row2 should be disabled")
	}
	if root.Find("row1").Parent() != body {
		t.Error("row1 should be inside body")
	}

	root.LayoutAsRoot(72)
	if root.W < 200 || root.H < 100 {
		t.Errorf("root = %dx%d, want at least 200x100", root.W, root.H)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`<panel><button/></panel>`, "line 1: <button>: unknown element"},
		{`<panel style="dock: up"/>`, `unknown dock rule "up"`},
		{`<panel id="p" style="min-width: wide"/>`, `<panel id="p">: malformed min-width`},
		{`<panel style="padding: 1 x"/>`, "malformed padding-right"},
		{`<panel style="background: sky"/>`, "malformed background colour"},
		{`<panel style="scroll: z"/>`, `unknown scroll value "z"`},
		{`<label style="color: nope">x</label>`, "malformed colour"},
		{`<label style="font-size: big">x</label>`, "malformed font-size"},
		{`<label><panel/></label>`, "cannot have child elements"},
		{`<panel>loose text</panel>`, "use a label"},
		{`<image/>`, "missing src"},
		{`<panel/><panel/>`, "exactly one top-level element, found 2"},
		{``, "found 0"},
		{`<style>x {</style><panel/>`, "stylesheet"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.input, Options{})
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %v, want %q", tt.input, err, tt.want)
		}
	}
}

func TestBuild_ErrorIsBuildError(t *testing.T) {
	_, err := Parse("<panel>\n  <panel>\n    <label style=\"dock: sideways\">x</label>\n  </panel>\n</panel>", Options{})
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("error %v is not a BuildError", err)
	}
	if be.Line != 3 || be.Tag != "label" {
		t.Errorf("BuildError = %+v, want line 3 <label>", be)
	}
}

func TestBuild_TextAttribute(t *testing.T) {
	tree, err := Parse(`<label text="from attr">from body</label>`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.Root.Content.(*widget.Label).Text; got != "from attr" {
		t.Errorf("text = %q", got)
	}
	if tree.Root.Name != "label" {
		t.Errorf("unnamed element name = %q, want tag", tree.Root.Name)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuild_Images(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "icon.png"), 16, 8)

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 3))); err != nil {
		t.Fatal(err)
	}
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	input := `<panel><image id="file" src="icon.png"/><image id="inline" src="` + dataURI + `"/></panel>`
	tree, err := Parse(input, Options{BaseDir: dir})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b := tree.Root.Find("file").Content.(*widget.Image).Image.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("file image = %v", b)
	}
	if b := tree.Root.Find("inline").Content.(*widget.Image).Image.Bounds(); b.Dx() != 3 {
		t.Errorf("inline image = %v", b)
	}

	if _, err := Parse(`<image src="missing.png"/>`, Options{BaseDir: dir}); err == nil {
		t.Error("expected error for missing image")
	}
}

func TestBuild_Scripts(t *testing.T) {
	tree, err := Parse(`<panel/><script>one()</script><script>two()</script>`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Scripts) != 2 || tree.Scripts[0] != "one()" {
		t.Errorf("Scripts = %q", tree.Scripts)
	}
}
