package server

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServeDebug exposes the pprof routes on a side port. Reach it over an
// internal network or an SSH tunnel, never the public listener.
func (s *Server) ServeDebug(addr string) {
	debugRouter := gin.New()
	pprof.Register(debugRouter)

	go func() {
		s.logger.Info("Debug server starting", zap.String("addr", addr))
		if err := debugRouter.Run(addr); err != nil {
			s.logger.Error("Debug server stopped", zap.Error(err))
		}
	}()
}
