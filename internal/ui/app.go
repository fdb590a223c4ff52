package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/state"
)

func RunApp() {
	myApp := app.New()
	myWindow := myApp.NewWindow("InkBoard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	engine := state.NewEngine()
	board := NewBoardWidget(engine)
	toolbar := NewToolbar(board, myWindow)

	status := widget.NewLabel("Ready")
	board.OnChanged = func() {
		status.SetText(fmt.Sprintf("%d strokes", engine.Len()))
	}

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
