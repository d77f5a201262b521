package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/tubedigest/internal/export"
	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/scraper"
	"github.com/nguyentantai21042004/tubedigest/internal/summarizer"
	"github.com/nguyentantai21042004/tubedigest/internal/transcript"
)

// SummarizeHandler turns a VideoPayload into a Summary. Model and parsing
// failures still answer 200 with a fallback or error-coded summary.
func SummarizeHandler(sum summarizer.Summarizer, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.VideoPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		summary, err := sum.Summarize(ctx, payload.Metadata(), payload.Transcript)
		if err != nil {
			log.Warn(ctx, "Summary request abandoned: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"source":  summary.Source,
			"summary": summary,
		})
	}
}

type parseRequest struct {
	Transcript string `json:"transcript"`
}

// ParseTranscriptHandler splits a raw transcript into timed segments.
func ParseTranscriptHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req parseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"segments": transcript.Parse(req.Transcript)})
	}
}

// VideoMetadataHandler looks up title and channel for a video id or URL.
func VideoMetadataHandler(meta MetadataLookup, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := scraper.ExtractVideoID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		info, err := meta.Lookup(ctx, id)
		if err != nil {
			log.Warn(ctx, "Metadata lookup for %s failed: %v", id, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

// ExportHandler renders a posted Summary as JSON or Markdown.
func ExportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var s models.Summary
		if err := c.ShouldBindJSON(&s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		export.Normalize(&s)

		format := c.DefaultQuery("format", export.FormatMarkdown)
		data, err := export.Render(&s, format)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		contentType := "text/markdown; charset=utf-8"
		if format == export.FormatJSON {
			contentType = "application/json; charset=utf-8"
		}
		c.Data(http.StatusOK, contentType, data)
	}
}
