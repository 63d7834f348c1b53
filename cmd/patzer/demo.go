package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"patzer/game"
	"patzer/render"
)

// demo lets the random opponent play itself, drawing every position.
func demo(moves int, delay time.Duration) error {
	log.Println("============ demo")
	var (
		timesAuto   []time.Duration
		timesRender []time.Duration
	)
	g := game.NewGame(game.ModeMultiplayer, game.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	for step := 0; step < moves; step++ {
		side := g.Turn()
		t1 := time.Now()
		ok := g.AutoMove()
		t2 := time.Now()
		timesAuto = append(timesAuto, t2.Sub(t1))
		if !ok {
			return fmt.Errorf("unexpected move exhaustion: %s has no moves", side)
		}

		history := g.History()
		t1 = time.Now()
		drawn := render.Terminal(g.Snapshot())
		t2 = time.Now()
		timesRender = append(timesRender, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", step/2+1, side, history[len(history)-1])
		fmt.Println(drawn)
		fmt.Println(render.Status(g.Snapshot()))
		if delay > 0 {
			<-time.Tick(delay)
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return time.Duration(s.Seconds() / float64(len(ds)) * float64(time.Second))
	}

	fmt.Println()
	fmt.Println("auto:  ", avg(timesAuto))
	fmt.Println("render:", avg(timesRender))
	return nil
}
