package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/vendorportal/internal/api/dto"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/api"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/export"
	"github.com/RoyceAzure/lab/vendorportal/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{productService: productService}
}

// @Summary list products with search and paging
// @Tags product
// @Produce json
// @Param search query string false "search across title/price/desc"
// @Param title query string false "title filter"
// @Param price query string false "price filter"
// @Param desc query string false "desc filter"
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Security ApiKeyAuth
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ProductFilter{
		Search:      q.Get("search"),
		TitleSearch: q.Get("title"),
		PriceSearch: q.Get("price"),
		DescSearch:  q.Get("desc"),
	}
	page, pageSize := parsePaging(r)

	products, total, err := h.productService.List(r.Context(), filter, page, pageSize)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	dtos := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, dto.ProductToDTO(p))
	}
	api.SuccessJSON(w, dtos, dto.ListMeta{Page: page, PageSize: pageSize, Total: total})
}

func (h *ProductHandler) getProductFromPath(ctx context.Context, r *http.Request) (*model.Product, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return nil, er.New(er.BadRequestCode, "invalid product id")
	}
	return h.productService.Get(ctx, id)
}

// @Summary get single product
// @Tags product
// @Produce json
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Security ApiKeyAuth
// @Router /products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.getProductFromPath(r.Context(), r)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			api.ErrorJSON(w, int(er.NotFoundCode), err, er.ErrStrMap[er.NotFoundCode])
			return
		}
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ProductToDTO(*product), nil)
}

func productFromInput(input dto.ProductInputDTO) (*model.Product, map[string]string) {
	fieldErrors := map[string]string{}
	if input.Title == "" {
		fieldErrors["title"] = "Title is required"
	}
	price, err := dto.ParsePrice(input.Price)
	if err != nil {
		fieldErrors["price"] = "Price is invalid"
	}
	if input.Quantity < 0 {
		fieldErrors["quantity"] = "Quantity cannot be negative"
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return &model.Product{
		Title: input.Title,
		Price: price,
		Desc:  input.Desc,
		Image: input.Image,
		Stock: input.Quantity,
	}, nil
}

// @Summary create product
// @Tags product
// @Accept json
// @Produce json
// @Param product body dto.ProductInputDTO true "product"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Security ApiKeyAuth
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.ProductInputDTO
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	product, fieldErrors := productFromInput(input)
	if fieldErrors != nil {
		api.FieldErrorsJSON(w, int(er.InvalidArgumentCode), fieldErrors)
		return
	}

	created, err := h.productService.Create(r.Context(), *product)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ProductToDTO(*created), nil)
}

// @Summary update product
// @Tags product
// @Accept json
// @Produce json
// @Param product body dto.ProductInputDTO true "product"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Security ApiKeyAuth
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid product id")
		return
	}

	var input dto.ProductInputDTO
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	product, fieldErrors := productFromInput(input)
	if fieldErrors != nil {
		api.FieldErrorsJSON(w, int(er.InvalidArgumentCode), fieldErrors)
		return
	}
	product.ID = id

	updated, err := h.productService.Update(r.Context(), *product)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			api.ErrorJSON(w, int(er.NotFoundCode), err, er.ErrStrMap[er.NotFoundCode])
			return
		}
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ProductToDTO(*updated), nil)
}

// @Summary delete product
// @Tags product
// @Produce json
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Security ApiKeyAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid product id")
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			api.ErrorJSON(w, int(er.NotFoundCode), err, er.ErrStrMap[er.NotFoundCode])
			return
		}
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, "Card deleted successfully.", nil)
}

// @Summary export product catalog as xlsx
// @Tags product
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Router /products/export/xlsx [get]
func (h *ProductHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	products, _, err := h.productService.List(r.Context(), service.ProductFilter{}, 1, 0)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=products.xlsx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := export.ProductsXLSX(products, w); err != nil {
		api.ErrorJSON(w, int(er.InternalErrorCode), err, "Failed to write Excel file")
		return
	}
}
