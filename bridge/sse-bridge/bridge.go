package main

import (
	"os"

	"github.com/viant/ssebridge/bridge"
	"github.com/viant/ssebridge/logging"
)

func main() {
	if err := bridge.Run(os.Args[1:]); err != nil {
		logging.New(os.Stderr, false).Fatal("bridge stopped", "err", err)
	}
}
