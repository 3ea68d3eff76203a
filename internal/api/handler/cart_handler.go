package handler

import (
	"encoding/json"
	"errors"
	"fmt"
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

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

// @Summary get current cart
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Security ApiKeyAuth
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart := h.cartService.GetCart(r.Context())
	api.SuccessJSON(w, dto.CartToDTO(cart, ""), nil)
}

// @Summary add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddToCartDTO true "product and quantity"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Failure 409 {object} api.ResponseError "ConflictCode"
// @Security ApiKeyAuth
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	cart, notice, err := h.cartService.AddToCart(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			api.ErrorJSON(w, int(er.NotFoundCode), err, er.ErrStrMap[er.NotFoundCode])
		case errors.Is(err, service.ErrInvalidQuantity):
			api.ErrorJSON(w, int(er.InvalidArgumentCode), err, err.Error())
		case errors.Is(err, service.ErrInsufficientStock):
			api.ErrorJSON(w, int(er.ConflictCode), err, "Not enough stock available.")
		default:
			handleServiceError(w, err)
		}
		return
	}
	api.SuccessJSON(w, dto.CartToDTO(cart, notice), nil)
}

// @Summary overwrite quantity of a cart line
// @Tags cart
// @Accept json
// @Produce json
// @Param quantity body dto.UpdateQuantityDTO true "new quantity, zero or less removes the line"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Security ApiKeyAuth
// @Router /cart/items/{productID} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid product id")
		return
	}

	var req dto.UpdateQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	cart := h.cartService.UpdateQuantity(r.Context(), productID, req.Quantity)
	api.SuccessJSON(w, dto.CartToDTO(cart, ""), nil)
}

// @Summary remove product from cart
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Security ApiKeyAuth
// @Router /cart/items/{productID} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid product id")
		return
	}

	cart := h.cartService.RemoveFromCart(r.Context(), productID)
	api.SuccessJSON(w, dto.CartToDTO(cart, ""), nil)
}

// @Summary generate invoice from the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param checkout body dto.GenerateInvoiceDTO true "customer details and optional line edits"
// @Success 200 {object} api.Response{data=dto.InvoiceDTO} "success"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Security ApiKeyAuth
// @Router /cart/invoice [post]
func (h *CartHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateInvoiceDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	edits, err := editsFromDTO(req.Edits)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid unit price in edits")
		return
	}

	invoice, fieldErrors, err := h.cartService.GenerateInvoice(r.Context(), model.Customer{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
		Country: req.Customer.Country,
	}, edits)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			api.ErrorJSON(w, int(er.ConflictCode), err, "Cart is empty.")
			return
		}
		handleServiceError(w, err)
		return
	}
	if len(fieldErrors) > 0 {
		api.FieldErrorsJSON(w, int(er.InvalidArgumentCode), fieldErrors)
		return
	}
	api.SuccessJSON(w, dto.InvoiceToDTO(invoice), nil)
}

// @Summary confirm checkout and clear the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param invoice body dto.InvoiceDTO true "invoice returned by the generate step"
// @Success 200 {object} api.Response{data=string} "success"
// @Security ApiKeyAuth
// @Router /cart/checkout [post]
func (h *CartHandler) ConfirmCheckout(w http.ResponseWriter, r *http.Request) {
	var req dto.InvoiceDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	invoice, err := dto.DTOToInvoice(req)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid invoice payload")
		return
	}

	if err := h.cartService.ConfirmCheckout(r.Context(), invoice); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, "Thank you for your purchase.", nil)
}

// @Summary download invoice as plain text receipt
// @Tags cart
// @Accept json
// @Produce text/plain
// @Param invoice body dto.InvoiceDTO true "invoice returned by the generate step"
// @Security ApiKeyAuth
// @Router /cart/invoice/export/text [post]
func (h *CartHandler) ExportInvoiceText(w http.ResponseWriter, r *http.Request) {
	invoice, ok := h.decodeInvoice(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.txt", invoice.ID))
	w.Header().Set("Content-Type", "text/plain;charset=utf-8")
	w.Write([]byte(export.InvoiceText(invoice)))
}

// @Summary download invoice as printable html
// @Tags cart
// @Accept json
// @Produce text/html
// @Param invoice body dto.InvoiceDTO true "invoice returned by the generate step"
// @Security ApiKeyAuth
// @Router /cart/invoice/export/html [post]
func (h *CartHandler) ExportInvoiceHTML(w http.ResponseWriter, r *http.Request) {
	invoice, ok := h.decodeInvoice(w, r)
	if !ok {
		return
	}

	html, err := export.InvoiceHTML(invoice)
	if err != nil {
		api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.html", invoice.ID))
	w.Header().Set("Content-Type", "text/html;charset=utf-8")
	w.Write([]byte(html))
}

func (h *CartHandler) decodeInvoice(w http.ResponseWriter, r *http.Request) (*model.Invoice, bool) {
	var req dto.InvoiceDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return nil, false
	}

	invoice, err := dto.DTOToInvoice(req)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid invoice payload")
		return nil, false
	}
	return invoice, true
}

func editsFromDTO(in []dto.InvoiceLineEditDTO) ([]service.InvoiceLineEdit, error) {
	edits := make([]service.InvoiceLineEdit, 0, len(in))
	for _, e := range in {
		unitPrice, err := dto.ParsePrice(e.UnitPrice)
		if err != nil {
			return nil, err
		}
		edits = append(edits, service.InvoiceLineEdit{
			ProductID: e.ProductID,
			UnitPrice: unitPrice,
			Quantity:  e.Quantity,
		})
	}
	return edits, nil
}
