package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	test := write(t, dir, "test.dock", `
<panel id="root">
  <panel id="side" style="dock: west; min-width: 10; background: red"/>
  <panel id="body" style="background: blue"/>
</panel>`)
	same := write(t, dir, "same.dock", `
<panel id="root" style="background: blue">
  <panel id="side" style="dock: west; min-width: 10; background: red"/>
</panel>`)
	wider := write(t, dir, "wider.dock", `
<panel id="root" style="background: blue">
  <panel id="side" style="dock: west; min-width: 12; background: red"/>
</panel>`)
	opts := options{width: 40, height: 20, dpi: 72}

	var out bytes.Buffer
	match, err := run(test, same, opts, &out)
	if err != nil || !match {
		t.Fatalf("run(same) = %v, %v\n%s", match, err, out.String())
	}

	out.Reset()
	match, err = run(test, wider, opts, &out)
	if err != nil || match {
		t.Fatalf("run(wider) = %v, %v", match, err)
	}
	report := out.String()
	for _, want := range []string{
		"40/800 pixels differ",
		"Difference bounding box: (10,0)-(12,20)",
		"panel body fill 10,0 30x20",
		"40/600 pixels differ",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "panel side") {
		t.Errorf("unchanged box listed:\n%s", report)
	}
}

func TestRun_MissingFile(t *testing.T) {
	if _, err := run("nope.dock", "nope-ref.dock", options{width: 1, height: 1, dpi: 72}, &bytes.Buffer{}); err == nil {
		t.Error("expected error")
	}
}
