package main

import (
	"github.com/joho/godotenv"

	"github.com/saltyhana/goalie/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
