package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/app/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := api.Run(ctx); err != nil {
		log.Fatalf("station API failed: %v", err)
	}
}
