package product

import (
	"database/sql"

	"go.uber.org/zap"

	productrepo "agromart/internal/product/repository"
	shoprepo "agromart/internal/shop/repository"
	"agromart/internal/upload"
)

func NewModule(db *sql.DB, uploader upload.Uploader, logger *zap.Logger) *Controller {
	repo := productrepo.NewMySQLProductRepository(db)
	shopRepo := shoprepo.NewMySQLShopRepository(db)

	service := NewService(repo, shopRepo)
	useCase := NewCatalogUseCase(service)

	return NewController(useCase, uploader, logger)
}
