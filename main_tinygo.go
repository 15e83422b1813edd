//go:build tinygo

package main

import (
	"deskclock/app"
	"deskclock/hal"
)

func main() {
	app.Run(hal.New())
}
