package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := NewRootCmd().Execute(); err != nil {
		log.Error("[MAIN] ", err)
		os.Exit(1)
	}
}
