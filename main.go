package main

import (
	"log"

	"github.com/inkwash/inkwash/cmd/inkwash"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	inkwash.Execute()
}
