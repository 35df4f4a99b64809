package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/productcatalog/catalog-api/internal/api/metrics"
	"github.com/productcatalog/catalog-api/internal/core/domain"
	"github.com/productcatalog/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
	log     zerolog.Logger
}

func NewProductHandler(service ports.ProductService, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{service: service, log: log}
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   productResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list products")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch products"})
	}

	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Update handles PUT /products/:id. Admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  productResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	id := c.Param("id")
	product, err := h.service.Update(c.Request().Context(), id, toUpdate(req))
	if err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("update", "failure").Inc()
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrProductNotFound.Error()})
		}
		h.log.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to update product"})
	}

	metrics.ProductMutationsTotal.WithLabelValues("update", "success").Inc()
	h.log.Info().Str("product_id", id).Str("by", username).Msg("product updated")
	return c.JSON(http.StatusOK, toProductResponse(*product))
}

// Delete handles DELETE /products/:id. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Product id"
// @Success      200  {object}  deleteProductResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("delete", "failure").Inc()
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrProductNotFound.Error()})
		}
		h.log.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to delete product"})
	}

	metrics.ProductMutationsTotal.WithLabelValues("delete", "success").Inc()
	h.log.Info().Str("product_id", id).Str("by", username).Msg("product deleted")
	return c.JSON(http.StatusOK, deleteProductResponse{Success: true})
}
