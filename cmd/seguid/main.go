// cmd/seguid/main.go
package main

import (
	"seguid/internal/app"
	"seguid/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
