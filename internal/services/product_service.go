package services

import (
	"fmt"

	"eshop/internal/models"
	"eshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to products, including the
// stock-decrement step used by checkout.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	validate     *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, validate *validator.Validate) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		validate:     validate,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductsOrderedByUser retrieves the products a user has ordered.
func (s *ProductService) GetProductsOrderedByUser(userID string) ([]models.Product, error) {
	return s.repo.GetAllOrderedByUser(userID)
}

// GetProductsInCartByUser retrieves the products currently in a user's cart.
func (s *ProductService) GetProductsInCartByUser(userID string) ([]models.Product, error) {
	return s.repo.GetAllInCartByUser(userID)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no such product: %w", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct creates a new product. The SKU must be unused and the
// referenced category must exist.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := validateStruct(s.validate, product); err != nil {
		return err
	}
	if s.skuExists(product.SKU) {
		return fmt.Errorf("SKU '%s' already exists: %w", product.SKU, ErrConflict)
	}
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("no such category: %w", ErrNotFound)
		}
		return err
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product. A changed SKU must not collide
// with another product's.
func (s *ProductService) UpdateProduct(id string, product *models.Product) (*models.Product, error) {
	retrieved, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.repo.GetBySKU(product.SKU); err == nil && existing != nil && existing.ID != id {
		return nil, fmt.Errorf("SKU '%s' already exists: %w", product.SKU, ErrConflict)
	}
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no such category: %w", ErrNotFound)
		}
		return nil, err
	}

	retrieved.Name = product.Name
	retrieved.Description = product.Description
	retrieved.SKU = product.SKU
	retrieved.CategoryID = product.CategoryID
	retrieved.Category = nil
	retrieved.Price = product.Price
	retrieved.InStock = product.InStock

	if err := validateStruct(s.validate, retrieved); err != nil {
		return nil, err
	}
	if err := s.repo.Update(retrieved); err != nil {
		return nil, err
	}
	return retrieved, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("product does not exist: %w", ErrNotFound)
		}
		return err
	}
	return nil
}

// TotalPriceOfItems sums price*quantity over the given cart items, looking up
// each product's current price.
func (s *ProductService) TotalPriceOfItems(items []models.CartItem) (float64, error) {
	var total float64
	for _, item := range items {
		product, err := s.GetProductByID(item.ProductID)
		if err != nil {
			return 0, err
		}
		total += product.Price * float64(item.Quantity)
	}
	return total, nil
}

// UpdateProductStock decrements each item's product stock by the item
// quantity. A product whose stock cannot cover the quantity aborts with
// ErrOutOfStock.
func (s *ProductService) UpdateProductStock(items []models.CartItem) error {
	for _, item := range items {
		product, err := s.GetProductByID(item.ProductID)
		if err != nil {
			return err
		}
		ok, err := s.repo.DecrementStock(product.ID, item.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("product '%s' not in stock: %w", product.Name, ErrOutOfStock)
		}
	}
	return nil
}

func (s *ProductService) skuExists(sku string) bool {
	existing, err := s.repo.GetBySKU(sku)
	return err == nil && existing != nil
}
