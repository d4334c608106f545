package main

import (
	"estimate_app/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	routes.RunRelational()
}
