package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/geom"
	"InkBoard/internal/state"
)

// BoardWidget is the drawing surface. It translates mouse input into
// engine pointer events and paints the engine's stroke collection.
type BoardWidget struct {
	widget.BaseWidget
	engine *state.Engine

	panX, panY float32
	drawing    bool

	cursor       fyne.Position
	cursorInside bool

	showGrid bool
	gridSize float32

	// OnChanged is called after every mutation, for the status bar.
	OnChanged func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(engine *state.Engine) *BoardWidget {
	b := &BoardWidget{
		engine:   engine,
		showGrid: true,
		gridSize: 50,
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Engine() *state.Engine { return b.engine }

func (b *BoardWidget) ToggleGrid() {
	b.showGrid = !b.showGrid
	b.Refresh()
}

// toBoard converts a widget-local position to board coordinates,
// undoing the pan offset.
func (b *BoardWidget) toBoard(p fyne.Position) geom.Point {
	return geom.Pt(p.X-b.panX, p.Y-b.panY)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.drawing = true
	b.engine.Pointer(state.PointerEvent{Kind: state.EventBegin, Pos: b.toBoard(e.Position)})
	b.changed()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.drawing {
		return
	}
	b.drawing = false
	b.engine.Pointer(state.PointerEvent{Kind: state.EventEnd, Pos: b.toBoard(e.Position)})
	b.changed()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.drawing {
		b.cursor = e.Position
		b.engine.Pointer(state.PointerEvent{Kind: state.EventContinue, Pos: b.toBoard(e.Position)})
		b.changed()
		return
	}
	// Drag with no button tracked pans the board.
	b.panX += e.Dragged.DX
	b.panY += e.Dragged.DY
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.panX += e.Scrolled.DX
	b.panY += e.Scrolled.DY
	b.Refresh()
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.cursor = e.Position
	b.cursorInside = true
	b.Refresh()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.cursor = e.Position
	if b.erasing() {
		b.Refresh()
	}
}

func (b *BoardWidget) MouseOut() {
	b.cursorInside = false
	b.Refresh()
}

func (b *BoardWidget) erasing() bool {
	t := b.engine.Tool()
	return t == state.ToolEraserPartial || t == state.ToolEraserStroke
}

func (b *BoardWidget) changed() {
	if b.OnChanged != nil {
		b.OnChanged()
	}
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.NRGBA{R: 245, G: 246, B: 248, A: 255})
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	b := r.board
	objects := []fyne.CanvasObject{r.background}

	if b.showGrid {
		objects = append(objects, r.gridLines()...)
	}

	for _, s := range b.engine.Strokes() {
		for i := 0; i+1 < len(s.Points); i++ {
			line := canvas.NewLine(s.Color)
			line.StrokeWidth = s.Width
			line.Position1 = fyne.NewPos(s.Points[i].X+b.panX, s.Points[i].Y+b.panY)
			line.Position2 = fyne.NewPos(s.Points[i+1].X+b.panX, s.Points[i+1].Y+b.panY)
			objects = append(objects, line)
		}
	}

	// Eraser cursor ring previews the erase radius.
	if b.cursorInside && b.erasing() {
		rad := b.engine.EraserRadius()
		ring := canvas.NewCircle(color.Transparent)
		ring.StrokeColor = color.NRGBA{R: 120, G: 120, B: 120, A: 200}
		ring.StrokeWidth = 1
		ring.Resize(fyne.NewSize(2*rad, 2*rad))
		ring.Move(fyne.NewPos(b.cursor.X-rad, b.cursor.Y-rad))
		objects = append(objects, ring)
	}

	return objects
}

func (r *boardRenderer) gridLines() []fyne.CanvasObject {
	b := r.board
	size := b.Size()
	gridColor := color.NRGBA{R: 220, G: 220, B: 220, A: 100}

	var lines []fyne.CanvasObject
	for x := mod(b.panX, b.gridSize); x < size.Width; x += b.gridSize {
		line := canvas.NewLine(gridColor)
		line.StrokeWidth = 0.5
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, size.Height)
		lines = append(lines, line)
	}
	for y := mod(b.panY, b.gridSize); y < size.Height; y += b.gridSize {
		line := canvas.NewLine(gridColor)
		line.StrokeWidth = 0.5
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		lines = append(lines, line)
	}
	return lines
}

func mod(v, m float32) float32 {
	v -= m * float32(int(v/m))
	if v < 0 {
		v += m
	}
	return v
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
