package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	Execute()
}
