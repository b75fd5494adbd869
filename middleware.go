// middleware.go - privacy-conscious request logging
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/johnretsas/portfolio/internal/devserver"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	pageKey         = "page"
)

// Paths never logged: assets and the dev reload socket.
var quietPrefixes = []string{"/static/", "/favicon", devserver.Path}

// visitLog writes one line per page request. Client addresses are hashed
// with a per-process salt and never stored.
type visitLog struct {
	salt   string
	logger *log.Logger
}

func newVisitLog(logger *log.Logger) (*visitLog, error) {
	salt, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("visit log salt: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &visitLog{salt: salt, logger: logger}, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashIP is stable per address for the life of the process.
func (v *visitLog) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + v.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (v *visitLog) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		for _, p := range quietPrefixes {
			if strings.HasPrefix(path, p) {
				return
			}
		}

		visitor := "-"
		// Respect Do Not Track
		if c.GetHeader("DNT") != "1" {
			visitor = v.hashIP(c.ClientIP())
		}
		v.logger.Printf("%s %s %d page=%s visitor=%s id=%s %s",
			c.Request.Method, path, c.Writer.Status(),
			c.GetString(pageKey), visitor, c.GetString(requestIDKey),
			time.Since(start).Round(time.Microsecond))
	}
}

// requestID tags every request with an id, keeping a valid incoming one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
