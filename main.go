package main

import (
	"log"

	"github.com/calpyte/dstats/cmd/dstats"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	dstats.Execute()
}
