package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"staypay/models"
	"staypay/services/success"
	"staypay/templates"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler renders the checkout and confirmation pages.
type PageHandler struct {
	Templates      *template.Template
	PublishableKey string
	Resolver       success.Resolver
	Logger         *zap.Logger
}

func NewPageHandler(tmpl *template.Template, publishableKey string, resolver success.Resolver, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		Templates:      tmpl,
		PublishableKey: publishableKey,
		Resolver:       resolver,
		Logger:         logger,
	}
}

// Index serves GET / and GET /checkout.
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, templates.Index, templates.IndexData{PublishableKey: h.PublishableKey})
}

// Success serves GET /success for all three completion paths.
func (h *PageHandler) Success(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	cb := success.ParseCallback(
		c.Query("session_id"),
		c.Query("payment_intent"),
		c.Query("setup_intent"),
	)

	data, err := h.Resolver.Resolve(c.Request.Context(), cb)
	switch {
	case errors.Is(err, success.ErrNoCallback):
		c.Redirect(http.StatusFound, "/")
		return
	case err != nil:
		logger.Error("Success page lookup failed", zap.String("kind", cb.Kind.String()), zap.Error(err))
		c.String(http.StatusInternalServerError, retrievalMessage(cb.Kind))
		return
	}

	h.render(c, templates.Success, templates.SuccessData{SessionData: data})
}

func (h *PageHandler) render(c *gin.Context, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		getLogger(c, h.Logger).Error("Failed to render page", zap.String("template", name), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func retrievalMessage(kind models.CallbackKind) string {
	if kind == models.CallbackSession {
		return "Error retrieving booking information"
	}
	return "Error retrieving payment information"
}
