package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/shared"
)

// ProductService handles product business operations
type ProductService struct {
	products catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.products.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Product code %s is already in use", req.Code)
	}

	product, err := catalog.NewProduct(req.Code, req.Name, req.SalePrice, req.PurchasePrice)
	if err != nil {
		return nil, err
	}
	if req.GroupID != nil {
		product.AssignGroup(*req.GroupID)
	}
	if req.UnitID != nil {
		product.AssignUnit(*req.UnitID)
	}
	product.Description = req.Description

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByCode retrieves a product by its code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.products.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[ProductResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for idx := range products {
		responses = append(responses, ToProductResponse(&products[idx]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update changes a product's attributes
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.GroupID != nil {
		product.AssignGroup(*req.GroupID)
	}
	if req.UnitID != nil {
		product.AssignUnit(*req.UnitID)
	}
	if req.SalePrice != nil || req.PurchasePrice != nil {
		sale, purchase := product.SalePrice, product.PurchasePrice
		if req.SalePrice != nil {
			sale = *req.SalePrice
		}
		if req.PurchasePrice != nil {
			purchase = *req.PurchasePrice
		}
		if err := product.UpdatePrices(sale, purchase); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		product.Description = *req.Description
		product.Touch()
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product. Existing order lines keep their product
// reference; the delete itself is unconditional.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.products.Delete(ctx, productID)
}
