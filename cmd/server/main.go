package main

import (
	"log"

	"lucky888_backend/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
