package main

import (
	"flag"

	"github.com/df07/go-pathtracer/internal/logger"
	"github.com/df07/go-pathtracer/web/server"
)

func main() {
	port := flag.Int("port", 8090, "HTTP port for the preview server")
	flag.Parse()

	logger.Init()
	defer logger.Log.Sync() //nolint:errcheck

	srv := server.New(*port)
	srv.Run()
}
