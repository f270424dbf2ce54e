package api

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/youruser/postgen/internal/config"
	"github.com/youruser/postgen/internal/fonts"
	imagepkg "github.com/youruser/postgen/internal/image"
	"github.com/youruser/postgen/internal/post"
	"github.com/youruser/postgen/internal/release"
)

type Handler struct {
	Service *post.Service
	Config  config.Config
	Log     *logrus.Entry
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) fonts(c *gin.Context) {
	names, err := h.Service.Fonts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(names) == 0 {
		h.Log.WithField("dir", h.Config.FontDir).Warn("no fonts available, add .ttf files to the font directory")
	}
	c.JSON(http.StatusOK, gin.H{"count": len(names), "fonts": names})
}

func (h *Handler) fontPreview(c *gin.Context) {
	img, err := h.Service.Preview(c.Param("name"))
	if errors.Is(err, fonts.ErrFontNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error loading preview font: " + err.Error()})
		return
	}
	writePNG(c, img)
}

func (h *Handler) latestRelease(c *gin.Context) {
	repo := c.DefaultQuery("repo", h.Config.GitHub.DefaultRepo)
	rel, err := h.Service.Releases.Latest(c.Request.Context(), repo)
	if err != nil {
		c.JSON(releaseStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rel)
}

// postImage renders the post described by the request body and returns it
// as PNG. Stages that could not be drawn are listed in X-Skipped-Stages.
func (h *Handler) postImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	spec, err := req.toSpec(c.Request.Context(), h.Config, req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Service.Generate(spec)
	if errors.Is(err, post.ErrEmptyText) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter some text."})
		return
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if req.Save {
		path, err := h.Service.Save(res.Canvas.Image())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("X-Saved-Path", path)
	}
	setSkipped(c, res)
	writePNG(c, res.Canvas.Image())
}

func (h *Handler) postFromRelease(c *gin.Context) {
	var req releaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	repo := orDefault(req.Repo, h.Config.GitHub.DefaultRepo)
	spec, err := req.toSpec(c.Request.Context(), h.Config, "")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.Service.FromRelease(c.Request.Context(), repo, spec)
	if errors.Is(err, post.ErrRender) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		status := releaseStatus(err)
		msg := "No releases found or an error occurred."
		if status == http.StatusBadRequest {
			msg = err.Error()
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, out.Result.Canvas.Image(), imaging.PNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	setSkipped(c, out.Result)
	c.JSON(http.StatusOK, gin.H{
		"title":   out.Release.Title,
		"content": out.Release.Content,
		"summary": out.Summary,
		"image":   "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// qr returns a PNG QR code for the "repo" releases page, or for "text".
func (h *Handler) qr(c *gin.Context) {
	var q qrQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text := q.Text
	if q.Repo != "" {
		if err := release.ValidateRepo(q.Repo); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		text = release.PageURL(q.Repo)
	}
	if text == "" {
		text = release.PageURL(h.Config.GitHub.DefaultRepo)
	}
	b, err := imagepkg.GenerateQRPNG(text, orDefault(q.Size, defaultQRSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func releaseStatus(err error) int {
	switch {
	case errors.Is(err, release.ErrInvalidRepo):
		return http.StatusBadRequest
	case errors.Is(err, release.ErrNoReleases):
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func setSkipped(c *gin.Context, res *imagepkg.Result) {
	var skipped []string
	for _, s := range res.Failed() {
		skipped = append(skipped, s.Stage)
	}
	if len(skipped) > 0 {
		c.Header("X-Skipped-Stages", strings.Join(skipped, ","))
	}
}

func writePNG(c *gin.Context, img image.Image) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
