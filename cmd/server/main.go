package main

import (
	log "github.com/sirupsen/logrus"

	_ "taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/server"
)

// @title           Task Board API
// @version         1.0
// @description     Local Kanban task board with derived productivity metrics.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
