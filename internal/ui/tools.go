package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/export"
	"InkBoard/internal/state"
)

// colorSwatch is a tappable square of a single color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the tool strip: pen/eraser selection, eraser
// sub-mode, color palette, size sliders, clear and PDF export.
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	engine := board.Engine()

	eraserMode := widget.NewSelect([]string{"Partial", "Stroke"}, nil)
	eraserMode.SetSelected("Partial")
	eraserMode.Disable()
	eraserMode.OnChanged = func(mode string) {
		if engine.Tool() == state.ToolPen {
			return
		}
		if mode == "Stroke" {
			engine.SetTool(state.ToolEraserStroke)
		} else {
			engine.SetTool(state.ToolEraserPartial)
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			engine.SetTool(state.ToolPen)
			eraserMode.Disable()
			board.Refresh()
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			if eraserMode.Selected == "Stroke" {
				engine.SetTool(state.ToolEraserStroke)
			} else {
				engine.SetTool(state.ToolEraserPartial)
			}
			eraserMode.Enable()
			board.Refresh()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			engine.Clear()
			board.Refresh()
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			savePDF(board, win)
		}),
		widget.NewToolbarAction(theme.GridIcon(), board.ToggleGrid),
	)

	colorBox := container.NewHBox(
		newColorSwatch(color.Black, engine.SetColor),
		newColorSwatch(color.NRGBA{R: 220, A: 255}, engine.SetColor),
		newColorSwatch(color.NRGBA{G: 160, A: 255}, engine.SetColor),
		newColorSwatch(color.NRGBA{B: 220, A: 255}, engine.SetColor),
		newColorSwatch(color.NRGBA{R: 230, G: 170, A: 255}, engine.SetColor),
	)

	widthSlider := widget.NewSlider(1, 20)
	widthSlider.SetValue(2)
	widthSlider.OnChanged = func(v float64) {
		engine.SetWidth(float32(v))
	}

	radiusSlider := widget.NewSlider(5, 80)
	radiusSlider.SetValue(20)
	radiusSlider.OnChanged = func(v float64) {
		engine.SetEraserRadius(float32(v))
		board.Refresh()
	}

	slider := func(s *widget.Slider) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), s)
	}

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Eraser:"),
		eraserMode,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		slider(widthSlider),
		widget.NewLabel("Radius:"),
		slider(radiusSlider),
		layout.NewSpacer(),
	)
}

func savePDF(board *BoardWidget, win fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.PDF(writer, board.Engine().Strokes()); err != nil {
			log.Printf("[export] pdf failed: %v", err)
			dialog.ShowError(err, win)
		}
	}, win)
}
