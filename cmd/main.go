package main

import (
	"log"
	"os"

	"github.com/mikespe/calcalc2.0/config"
	"github.com/mikespe/calcalc2.0/routes"
)

func main() {
	config.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
