package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"patzer/server"
)

func serve(addr string) error {
	srv := server.NewServer()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	go func() {
		<-stop
		log.Println("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			log.Println("shutdown:", err)
		}
	}()

	return srv.Listen(addr)
}
