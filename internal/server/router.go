package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/internal/summarizer"
)

// NewRouter wires the API routes onto a fresh gin engine.
func NewRouter(sum summarizer.Summarizer, meta MetadataLookup, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/summaries", SummarizeHandler(sum, log))
		api.POST("/summaries/export", ExportHandler())
		api.POST("/transcripts/parse", ParseTranscriptHandler())
		api.GET("/videos/:id/metadata", VideoMetadataHandler(meta, log))
	}

	return r
}
