package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/middleware"
	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/services"
	"storefront-service/views"
)

// CartController handles the session cart endpoints.
type CartController struct {
	manager  *services.CartManager
	products repository.ProductRepository
	view     *views.CartView
	logger   *zap.Logger
}

// NewCartController creates a new CartController.
func NewCartController(
	manager *services.CartManager,
	products repository.ProductRepository,
	view *views.CartView,
	logger *zap.Logger,
) *CartController {
	return &CartController{
		manager:  manager,
		products: products,
		view:     view,
		logger:   logger,
	}
}

// GetCart returns the rendered cart for the current session, or 404 when the
// session has no stored cart yet.
func (cc *CartController) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	ctx := c.Request.Context()

	if !cc.manager.CartExists(ctx, sessionID) {
		c.IndentedJSON(http.StatusNotFound, gin.H{
			"status":  "err",
			"message": apperrors.ErrCartNotFound.Message,
			"cart":    nil,
		})
		return
	}

	cart := cc.manager.GetCart(ctx, sessionID)

	rendered, err := cc.view.Render(ctx, cart)
	if err != nil {
		cc.logger.Error("Failed to render cart",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		cc.internalError(c)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"status": "success", "cart": rendered})
}

// AddToCart appends a product to the session cart, creating the cart on first
// use, and returns the updated rendered cart. The line price is snapshotted
// from the catalog at this moment and never re-read.
func (cc *CartController) AddToCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	ctx := c.Request.Context()

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		cc.logger.Warn("Invalid add-to-cart payload", zap.Error(err))

		message := apperrors.ErrBadRequest.Message
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			message = apperrors.ErrValidation.Message
		}
		c.IndentedJSON(http.StatusBadRequest, gin.H{
			"status":  "err",
			"message": message,
			"cart":    nil,
		})
		return
	}

	product, err := cc.products.FindByUUID(ctx, req.ProductUUID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{
				"status":  "err",
				"message": apperrors.ErrProductNotFound.Message,
				"cart":    nil,
			})
			return
		}
		cc.logger.Error("Failed to look up product",
			zap.String("product_uuid", req.ProductUUID),
			zap.Error(err),
		)
		cc.internalError(c)
		return
	}

	cart := cc.manager.GetCart(ctx, sessionID)
	cart.AddItem(models.CartItem{
		UUID:        uuid.NewString(),
		ProductUUID: product.UUID,
		Price:       product.Price,
		Quantity:    req.Quantity,
	})

	if err := cc.manager.SaveCart(ctx, cart); err != nil {
		cc.logger.Error("Failed to save cart",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		cc.internalError(c)
		return
	}

	rendered, err := cc.view.Render(ctx, cart)
	if err != nil {
		cc.logger.Error("Failed to render cart",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		cc.internalError(c)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"status": "success", "cart": rendered})
}

func (cc *CartController) internalError(c *gin.Context) {
	c.IndentedJSON(http.StatusInternalServerError, gin.H{
		"status":  "err",
		"message": apperrors.ErrInternalServer.Message,
		"cart":    nil,
	})
}
