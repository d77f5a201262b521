package server

import (
	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/internal/summarizer"
)

type implServer struct {
	addr   string
	engine *gin.Engine
	logger logger.Logger
}

// New builds the HTTP server listening on addr.
func New(addr string, sum summarizer.Summarizer, meta MetadataLookup, log logger.Logger) Server {
	return &implServer{
		addr:   addr,
		engine: NewRouter(sum, meta, log),
		logger: log,
	}
}
