package main

import (
	"github.com/IRaudaS/games-backend/internal/app"
	"github.com/IRaudaS/games-backend/internal/config"
)

func main() {
	app.Go(config.Load())
}
