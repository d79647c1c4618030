// cmd/ngsio/main.go
package main

import (
	"ngsio/internal/app"
	"ngsio/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
