package main

import (
	"github.com/joho/godotenv"

	"smart-global/quotation_backend/internal/app"
)

func main() {
	_ = godotenv.Load()
	app.Run()
}
