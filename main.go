package main

import (
	"log"

	"github.com/lmangani/canwave/internal/app"
)

func main() {
	application, err := app.New(app.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	application.Run()
}
