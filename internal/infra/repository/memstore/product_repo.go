package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/shopspring/decimal"
)

type IProductRepository interface {
	GetAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int) (*model.Product, error)
	// Create 自動配號 max(id)+1，空清單從1開始
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ProductRepo 商品清單只存在記憶體，應用程式持有唯一一份
// handler共用同一個instance 所以需要讀寫鎖
type ProductRepo struct {
	mu       sync.RWMutex
	products map[int]model.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: map[int]model.Product{}}
}

// NewSeededProductRepo 帶入來源系統出廠的五筆商品
func NewSeededProductRepo() *ProductRepo {
	repo := NewProductRepo()
	seed := []model.Product{
		{ID: 1, Title: "LapTop", Price: decimal.RequireFromString("1200.00"), Desc: "Core i7, 16GB", Stock: 5},
		{ID: 2, Title: "USB Hub", Price: decimal.RequireFromString("1800.00"), Desc: "8 in 1 USB-C Hub", Stock: 0},
		{ID: 3, Title: "Head Phone", Price: decimal.RequireFromString("99.00"), Desc: "JBL Wireless", Stock: 10},
		{ID: 4, Title: "Smart Watch", Price: decimal.RequireFromString("299.00"), Desc: "Fitness Tracker with Heart Rate Monitor", Stock: 3},
		{ID: 5, Title: "Bluetooth Speaker", Price: decimal.RequireFromString("79.99"), Desc: "Portable Wireless Speaker", Stock: 5},
	}
	for _, p := range seed {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := 1
	for id := range r.products {
		if id >= nextID {
			nextID = id + 1
		}
	}
	product.ID = nextID
	r.products[nextID] = *product
	return product, nil
}

func (r *ProductRepo) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return nil, nil
	}
	r.products[product.ID] = *product
	return product, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

var _ IProductRepository = (*ProductRepo)(nil)
