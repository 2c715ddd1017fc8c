package main

import (
	"fmt"
	"log"

	"loa/bench"
)

func count(notation string, depth int, parallel, verbose bool) error {
	log.Println("============ count")
	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			fmt.Println(line)
		}
	}()

	err := bench.Count(depth, notation, parallel, verbose, out)
	close(out)
	<-done
	return err
}
