//go:build gio
// +build gio

package main

import (
	"image/color"
	"log"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

type browseButton struct {
	kind  string
	label string
	btn   widget.Clickable
}

type GioUI struct {
	p         *picker
	theme     *material.Theme
	pathEntry widget.Editor
	browse    []*browseButton
	copyBtn   widget.Clickable
}

func NewGioUI(p *picker) *GioUI {
	theme := material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	return &GioUI{
		p:     p,
		theme: theme,
		pathEntry: widget.Editor{
			SingleLine: true,
			Submit:     true,
		},
		browse: []*browseButton{
			{kind: "file", label: "📄 File"},
			{kind: "files", label: "📑 Files"},
			{kind: "dir", label: "📁 Folder"},
			{kind: "save", label: "💾 Save as"},
		},
	}
}

func (ui *GioUI) Run(w *app.Window) error {
	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// One poll per frame; the dialog answers between frames.
			if ui.p.poll() {
				ui.pathEntry.SetText(ui.p.path)
			}
			if txt := ui.pathEntry.Text(); txt != ui.p.path {
				ui.p.path = txt
			}

			for _, b := range ui.browse {
				if b.btn.Clicked(gtx) {
					ui.p.open(b.kind)
				}
			}

			if ui.copyBtn.Clicked(gtx) {
				ui.p.copyPath()
			}

			ui.Layout(gtx)
			e.Frame(gtx.Ops)

			// Nothing wakes the window when the dialog goroutine finishes,
			// so keep drawing frames while one is in flight.
			if ui.p.busy() {
				w.Invalidate()
			}
		}
	}
}

func (ui *GioUI) Layout(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				title := material.H6(ui.theme, "pathpick")
				title.Color = color.NRGBA{R: 63, G: 81, B: 181, A: 255}
				return title.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

			// Path row
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if ui.p.busy() {
					gtx = gtx.Disabled()
				}
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return material.Body1(ui.theme, "Path").Layout(gtx)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						editor := material.Editor(ui.theme, &ui.pathEntry, "Choose a path...")
						editor.Color = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
						return editor.Layout(gtx)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						btn := material.Button(ui.theme, &ui.copyBtn, "📋 Copy")
						btn.Background = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
						btn.TextSize = unit.Sp(12)
						return btn.Layout(gtx)
					}),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			// Browse buttons, disabled while a dialog is showing
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if ui.p.busy() {
					gtx = gtx.Disabled()
				}
				children := make([]layout.FlexChild, 0, 2*len(ui.browse))
				for i, b := range ui.browse {
					if i > 0 {
						children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout))
					}
					children = append(children, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						btn := material.Button(ui.theme, &b.btn, b.label)
						btn.Background = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
						if b.kind == ui.p.kind {
							btn.Background = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
						}
						return btn.Layout(gtx)
					}))
				}
				return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceEvenly}.Layout(gtx, children...)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				status := ui.p.status
				if ui.p.busy() {
					status = "⏳ " + status
				}
				label := material.Body2(ui.theme, status)
				label.Color = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
				return label.Layout(gtx)
			}),
		)
	})
}

// RunGUI shows the Gio window. It does not return.
func RunGUI(cfg Config, p *picker, _ *slog.Logger) error {
	go func() {
		w := new(app.Window)
		w.Option(app.Title(cfg.UI.Title))
		w.Option(app.Size(unit.Dp(float32(cfg.UI.Width)), unit.Dp(float32(cfg.UI.Height))))

		ui := NewGioUI(p)
		ui.pathEntry.SetText(p.path)

		if err := ui.Run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
