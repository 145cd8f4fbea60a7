package main

import (
	"context"
	"github.com/clambin/vetinari/internal/cmd"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interrupt
		log.Info("shutting down")
		cancel()
	}()

	if err := cmd.Main(ctx, os.Args[1:]); err != nil {
		log.WithError(err).Fatal("vetinari failed")
	}
}
