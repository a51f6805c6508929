package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PennChopMicrobiomeProgram/marc-db/server/handler"
)

type Config struct {
	Host      string
	Port      int
	DebugMode bool
}

/*
Server exposes read-only lookups over the store. Ingestion stays on the CLI:
the store assumes a single logical writer, so the HTTP surface never mutates.
*/
type Server struct {
	engine *gin.Engine
	config *Config
}

func New(config *Config, db *gorm.DB) *Server {
	if !config.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	eng := gin.Default()

	eng.Use(cors.Default())

	eng.GET("/health", healthHandler)

	eng.GET("/isolates", handler.ListIsolates(db))
	eng.GET("/aliquots", handler.ListAliquots(db))
	eng.GET("/assemblies", handler.ListAssemblies(db))

	return &Server{
		engine: eng,
		config: config,
	}
}

func (s *Server) RunServer() error {
	return s.engine.Run(fmt.Sprintf("%s:%d", s.config.Host, s.config.Port))
}

func healthHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
