package main

import (
	"context"
	"log"

	"github.com/avoronin/authkeep/internal/cli"
	"github.com/avoronin/authkeep/internal/config"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
