// cmd/fxtools/main.go
package main

import (
	"fxtools/internal/app"
	"fxtools/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
