package main

import (
	"github.com/psalmos/web/internal/server"
)

func main() {
	s := server.New()
	s.RegisterRoutes()
	s.Start(s.Cfg.GetAddr())
}
