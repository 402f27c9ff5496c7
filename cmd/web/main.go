package main

import (
	"os"

	"github.com/cinegestor/cinema-admin-console/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
