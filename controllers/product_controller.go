package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/models"
	"storefront-service/views"
)

// ProductController handles catalog listing.
type ProductController struct {
	view   *views.ProductsView
	logger *zap.Logger
}

// NewProductController creates a new ProductController.
func NewProductController(view *views.ProductsView, logger *zap.Logger) *ProductController {
	return &ProductController{view: view, logger: logger}
}

// GetProducts lists the active products of a category. The category arrives
// in the request body; the storefront client has always sent it that way.
func (pc *ProductController) GetProducts(c *gin.Context) {
	var req models.ProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pc.logger.Warn("Invalid products payload", zap.Error(err))
		c.IndentedJSON(http.StatusBadRequest, gin.H{
			"status":   "err",
			"message":  apperrors.ErrValidation.Message,
			"products": nil,
		})
		return
	}

	items, err := pc.view.Render(c.Request.Context(), req.Category)
	if err != nil {
		pc.logger.Error("Failed to list products",
			zap.String("category", req.Category),
			zap.Error(err),
		)
		c.IndentedJSON(http.StatusInternalServerError, gin.H{
			"status":   "err",
			"message":  apperrors.ErrInternalServer.Message,
			"products": nil,
		})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"status": "success", "products": items})
}
