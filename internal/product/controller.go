package product

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"agromart/internal/auth"
	apperrors "agromart/internal/errors"
	"agromart/internal/upload"
)

const maxImageSize = 5 << 20 // 5MB, matching the upload store limit

type Controller struct {
	useCase  CatalogUseCase
	uploader upload.Uploader
	logger   *zap.Logger
}

func NewController(useCase CatalogUseCase, uploader upload.Uploader, logger *zap.Logger) *Controller {
	return &Controller{
		useCase:  useCase,
		uploader: uploader,
		logger:   logger,
	}
}

// HandleBrowse serves the farmer-facing catalog listing.
func (c *Controller) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	req := BrowseProductsRequest{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	if v := r.URL.Query().Get("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			c.writeError(w, http.StatusBadRequest, "minPrice must be a non-negative number")
			return
		}
		req.MinPrice = &price
	}
	if v := r.URL.Query().Get("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			c.writeError(w, http.StatusBadRequest, "maxPrice must be a non-negative number")
			return
		}
		req.MaxPrice = &price
	}

	resp, err := c.useCase.Browse(r.Context(), req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleDealerList(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())

	products, err := c.useCase.ListDealerProducts(r.Context(), principal.ID)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"products": products,
	})
}

func (c *Controller) HandleAdd(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())

	req, err := c.parseAddRequest(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeError(w, http.StatusBadRequest, ve.Message)
		return
	}

	imageURL, err := c.uploadImage(r.Context(), r)
	if err != nil {
		c.logger.Error("uploading product image", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "failed to upload product image")
		return
	}
	req.ImageURL = imageURL

	created, err := c.useCase.AddProduct(r.Context(), principal.ID, *req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "product added successfully",
		"product": created,
	})
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	req, err := c.parseUpdateRequest(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeError(w, http.StatusBadRequest, ve.Message)
		return
	}

	if hasImage(r) {
		imageURL, err := c.uploadImage(r.Context(), r)
		if err != nil {
			c.logger.Error("uploading product image", zap.Error(err))
			c.writeError(w, http.StatusInternalServerError, "failed to upload product image")
			return
		}
		req.ImageURL = &imageURL
	}

	updated, err := c.useCase.UpdateProduct(r.Context(), principal.ID, productID, *req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "product updated successfully",
		"product": updated,
	})
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	if err := c.useCase.DeleteProduct(r.Context(), principal.ID, productID); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "product deleted successfully",
	})
}

func (c *Controller) parseAddRequest(r *http.Request) (*AddProductRequest, error) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return nil, apperrors.NewValidationError("request body must be multipart form data")
	}

	req := AddProductRequest{
		ShopID:      r.FormValue("shopId"),
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Unit:        r.FormValue("unit"),
		IsPublished: r.FormValue("isPublished") == "true",
	}

	if req.ShopID == "" || req.Name == "" || req.Category == "" {
		return nil, apperrors.NewValidationError("shopId, name, category, price and quantity are required")
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		return nil, apperrors.NewValidationError("price must be a non-negative number")
	}
	req.Price = price

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 0 {
		return nil, apperrors.NewValidationError("quantity must be a non-negative integer")
	}
	req.Quantity = quantity

	if v := r.FormValue("warehouseQuantity"); v != "" {
		wq, err := strconv.Atoi(v)
		if err != nil || wq < 0 {
			return nil, apperrors.NewValidationError("warehouseQuantity must be a non-negative integer")
		}
		req.WarehouseQuantity = &wq
	}

	return &req, nil
}

func (c *Controller) parseUpdateRequest(r *http.Request) (*UpdateProductRequest, error) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return nil, apperrors.NewValidationError("request body must be multipart form data")
	}

	var req UpdateProductRequest

	if v := r.FormValue("name"); v != "" {
		req.Name = &v
	}
	if v := r.FormValue("category"); v != "" {
		req.Category = &v
	}
	if r.Form.Has("description") {
		v := r.FormValue("description")
		req.Description = &v
	}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return nil, apperrors.NewValidationError("price must be a non-negative number")
		}
		req.Price = &price
	}
	if v := r.FormValue("quantity"); v != "" {
		quantity, err := strconv.Atoi(v)
		if err != nil || quantity < 0 {
			return nil, apperrors.NewValidationError("quantity must be a non-negative integer")
		}
		req.Quantity = &quantity
	}
	if v := r.FormValue("warehouseQuantity"); v != "" {
		wq, err := strconv.Atoi(v)
		if err != nil || wq < 0 {
			return nil, apperrors.NewValidationError("warehouseQuantity must be a non-negative integer")
		}
		req.WarehouseQuantity = &wq
	}
	if v := r.FormValue("unit"); v != "" {
		req.Unit = &v
	}
	if r.Form.Has("isPublished") {
		v := r.FormValue("isPublished") == "true"
		req.IsPublished = &v
	}
	if r.Form.Has("isAvailable") {
		v := r.FormValue("isAvailable") == "true"
		req.IsAvailable = &v
	}

	return &req, nil
}

func hasImage(r *http.Request) bool {
	if r.MultipartForm == nil {
		return false
	}
	return len(r.MultipartForm.File["productImage"]) > 0
}

func (c *Controller) uploadImage(ctx context.Context, r *http.Request) (string, error) {
	file, header, err := r.FormFile("productImage")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		return "", err
	}

	return c.uploader.Upload(ctx, data, header.Filename, "agro/products")
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, nfe.Message)
		return
	}
	if fe, ok := apperrors.IsForbiddenError(err); ok {
		c.writeError(w, http.StatusForbidden, fe.Message)
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, http.StatusBadRequest, ve.Message)
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
}

func (c *Controller) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
