package service

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/memstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
)

var ErrNegativeStock = errors.New("stock cannot be negative")

// ProductFilter 全文搜尋加上逐欄位過濾，全部在記憶體內進行
type ProductFilter struct {
	Search      string
	TitleSearch string
	PriceSearch string
	DescSearch  string
}

type IProductService interface {
	List(ctx context.Context, filter ProductFilter, page, pageSize int) ([]model.Product, int, error)
	Get(ctx context.Context, id int) (*model.Product, error)
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	Update(ctx context.Context, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int) error
}

type ProductService struct {
	productRepo memstore.IProductRepository
}

func NewProductService(productRepo memstore.IProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func matchProduct(p model.Product, filter ProductFilter) bool {
	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	if filter.Search != "" {
		fields := []string{p.Title, p.DisplayPrice(), p.Desc}
		matched := false
		for _, f := range fields {
			if contains(f, filter.Search) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if filter.TitleSearch != "" && !contains(p.Title, filter.TitleSearch) {
		return false
	}
	if filter.PriceSearch != "" && !contains(p.DisplayPrice(), filter.PriceSearch) {
		return false
	}
	if filter.DescSearch != "" && !contains(p.Desc, filter.DescSearch) {
		return false
	}
	return true
}

// List 回傳符合條件的單頁資料與過濾後總筆數
func (s *ProductService) List(ctx context.Context, filter ProductFilter, page, pageSize int) ([]model.Product, int, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matchProduct(p, filter) {
			filtered = append(filtered, p)
		}
	}

	return paginate(filtered, page, pageSize), len(filtered), nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.Stock < 0 {
		return nil, ErrNegativeStock
	}
	return s.productRepo.Create(ctx, &product)
}

func (s *ProductService) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.Stock < 0 {
		return nil, ErrNegativeStock
	}
	updated, err := s.productRepo.Update(ctx, &product)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

// paginate page從1開始，超出範圍回傳空頁
func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = len(items)
		if pageSize == 0 {
			return []T{}
		}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

var _ IProductService = (*ProductService)(nil)
