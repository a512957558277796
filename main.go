package main

import (
	"github.com/wishtally/backend/cmd/app"
)

func main() {
	app.Run()
}
