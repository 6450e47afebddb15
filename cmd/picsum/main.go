package main

import (
	"github.com/joho/godotenv"

	"github.com/dleutenegger/picsum-go/internal/cli"
)

func main() {
	// A .env in the working directory may set PICSUM_BASE_URL; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}
