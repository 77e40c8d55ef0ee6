package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

type endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SitemapHandler lists the public routes registered on the engine.
type SitemapHandler struct {
	routes func() gin.RoutesInfo
}

func NewSitemapHandler(routes func() gin.RoutesInfo) *SitemapHandler {
	return &SitemapHandler{routes: routes}
}

func (h *SitemapHandler) Show(c *gin.Context) {
	out := []endpoint{}
	for _, r := range h.routes() {
		if strings.HasPrefix(r.Path, "/admin") {
			continue
		}
		out = append(out, endpoint{Method: r.Method, Path: r.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	c.JSON(http.StatusOK, gin.H{"endpoints": out})
}
