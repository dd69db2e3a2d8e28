package server

import (
	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"golang.org/x/net/http/httpguts"
)

// brotliWriter compresses the response body written through gin.
type brotliWriter struct {
	gin.ResponseWriter
	w *brotli.Writer
}

func (b *brotliWriter) Write(p []byte) (int, error) {
	return b.w.Write(p)
}

func (b *brotliWriter) WriteString(s string) (int, error) {
	return b.w.Write([]byte(s))
}

// compress encodes responses with brotli when the client accepts it.
func compress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !httpguts.HeaderValuesContainsToken(c.Request.Header["Accept-Encoding"], "br") {
			c.Next()
			return
		}
		h := c.Writer.Header()
		h.Set("Content-Encoding", "br")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")

		bw := &brotliWriter{
			ResponseWriter: c.Writer,
			w:              brotli.NewWriterLevel(c.Writer, brotli.DefaultCompression),
		}
		c.Writer = bw
		defer bw.w.Close()
		c.Next()
	}
}
