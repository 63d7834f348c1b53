package main

import (
	"log"

	"patzer/bench"
)

func census(depth int, parallel bool) error {
	log.Printf("============ census(%d)\n", depth)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	err := bench.Census(depth, parallel, true, out)
	close(out)
	<-done
	return err
}
