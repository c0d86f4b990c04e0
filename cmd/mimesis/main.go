package main

import (
	"github.com/mimesis-go/mimesis/internal/generator/app"
)

// version is set by linker flags on release builds.
var version = "dev"

func main() {
	application := app.NewApp(version)
	application.Run()
}
