package http

import (
	"github.com/gin-gonic/gin"
)

// Server owns the configured gin engine. The engine stays exported so tests
// can drive it through httptest without binding a port.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run blocks serving on address until the listener fails.
func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}
