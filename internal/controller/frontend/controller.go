// Package frontend serves the built single page app next to the API.
package frontend

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cargo-backend/internal/config"
	"cargo-backend/internal/utilities"
)

// reservedPrefixes never fall back to index.html
var reservedPrefixes = []string{"/api/", "/static/", "/assets/"}

// FrontendController serves index.html and the static mounts.
type FrontendController struct {
	// Root is the directory index.html and /static are served from.
	Root string
	// Assets is the bundler output mounted at /assets, empty when absent.
	Assets string
	Log    *logrus.Logger
}

// NewFrontendController resolves the frontend root: the dist directory when it
// exists, otherwise the source directory.
func NewFrontendController(cfg *config.Config, log *logrus.Logger) *FrontendController {
	fc := &FrontendController{
		Root: cfg.Frontend.SourceDir,
		Log:  log,
	}
	if isDir(cfg.Frontend.DistDir) {
		fc.Root = cfg.Frontend.DistDir
		if assets := filepath.Join(cfg.Frontend.DistDir, "assets"); isDir(assets) {
			fc.Assets = assets
		}
	}
	return fc
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (fc *FrontendController) indexPath() (string, bool) {
	p := filepath.Join(fc.Root, "index.html")
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return p, true
}

// Mount registers /assets and /static when their directories exist.
func (fc *FrontendController) Mount(r gin.IRoutes) {
	if fc.Assets != "" {
		r.Static("/assets", fc.Assets)
	}
	if isDir(fc.Root) {
		r.Static("/static", fc.Root)
	} else {
		fc.Log.WithField("root", fc.Root).Warn("frontend directory not found, only the API is served")
	}
}

// Home serves index.html at the site root.
func (fc *FrontendController) Home(c *gin.Context) {
	p, ok := fc.indexPath()
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Frontend not found"})
		return
	}
	c.File(p)
}

// Fallback handles every unmatched route. GET requests outside the reserved
// prefixes get index.html so the client side router can take over.
func (fc *FrontendController) Fallback(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Not found"})
		return
	}

	path := c.Request.URL.Path
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(path, prefix) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Not found"})
			return
		}
	}

	p, ok := fc.indexPath()
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Not found"})
		return
	}
	c.File(p)
}
