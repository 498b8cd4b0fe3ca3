package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/deadswitch/internal/buildinfo"
	"github.com/dmitrijs2005/deadswitch/internal/server"
	"github.com/dmitrijs2005/deadswitch/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Printf("config: %v", err)
		os.Exit(2)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
