package main

import (
	"github.com/joho/godotenv"

	"forgeyourday/cmd/fyd/root"
)

func main() {
	_ = godotenv.Load()
	root.Execute()
}
