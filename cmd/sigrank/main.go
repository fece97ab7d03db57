package main

import (
	"sigrank/internal/app"
	"sigrank/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
