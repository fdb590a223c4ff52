package main

import "InkBoard/internal/ui"

func main() {
	ui.RunApp()
}
