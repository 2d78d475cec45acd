// Command dockview shows a markup document in a resizable window. The page is
// laid out again whenever the window changes size.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"dockbox/pkg/resource"
	"dockbox/pkg/script"
	"dockbox/pkg/viewer"
	stdnet "dockbox/std/net"
)

func main() {
	a := app.New()
	w := a.NewWindow("dockview")
	w.Resize(fyne.NewSize(800, 600))

	status := widget.NewLabel("Enter a file path or URL and press Enter")

	// A renderer is created per document so relative images resolve
	// against that document's location.
	view := viewer.NewPageView(resource.NewDockRenderer(nil))
	view.Scale = w.Canvas().Scale
	view.OnStatus = status.SetText

	entry := widget.NewEntry()
	entry.SetPlaceHolder("page.dock or https://example.com/page.dock")
	open := func(src string) {
		status.SetText("Loading " + src + "...")
		go func() {
			content, fetcher, err := fetch(src)
			fyne.Do(func() {
				if err != nil {
					status.SetText("Error: " + err.Error())
					return
				}
				renderer := resource.NewDockRenderer(fetcher)
				renderer.SetScriptEngine(script.New())
				view.SetRenderer(renderer)
				if view.SetContent(content) == nil {
					w.SetTitle(fmt.Sprintf("dockview - %s", src))
				}
			})
		}()
	}
	entry.OnSubmitted = open

	content := container.NewBorder(entry, status, nil, nil, view)
	w.SetContent(content)
	w.Canvas().Focus(entry)

	if len(os.Args) > 1 {
		entry.SetText(os.Args[1])
		open(os.Args[1])
	}

	w.ShowAndRun()
}

// fetch loads markup from a URL or a file and returns a fetcher for the
// resources it refers to.
func fetch(src string) (string, resource.Fetcher, error) {
	if stdnet.IsNetworkURL(src) {
		fetcher := resource.NewFetcher(src)
		content, err := resource.FetchMarkup(fetcher, src)
		return content, fetcher, err
	}
	path, err := filepath.Abs(src)
	if err != nil {
		return "", nil, err
	}
	fetcher := resource.FileFetcher{Dir: filepath.Dir(path)}
	content, err := resource.FetchMarkup(fetcher, path)
	return content, fetcher, err
}
