package main

import "repogenesis_backend/internal/app"

func main() {
	app.Run()
}
