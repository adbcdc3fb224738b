package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetGroceries    = "groceries retrieved successfully"
	MessageSuccessAddGrocery      = "grocery added successfully"
	MessageSuccessUpdateGrocery   = "grocery updated successfully"
	MessageSuccessDeleteGrocery   = "grocery deleted successfully"
	MessageSuccessGetExpiring     = "upcoming expiries retrieved successfully"
	MessageSuccessUploadBill      = "bill uploaded successfully"
	MessageSuccessGetBillScan     = "bill scan retrieved successfully"

	MessageFailedGetGroceries  = "failed to retrieve groceries"
	MessageFailedAddGrocery    = "failed to add grocery"
	MessageFailedUpdateGrocery = "failed to update grocery"
	MessageFailedDeleteGrocery = "failed to delete grocery"
	MessageFailedGetExpiring   = "failed to retrieve upcoming expiries"
	MessageFailedUploadBill    = "failed to upload bill"
	MessageFailedGetBillScan   = "failed to retrieve bill scan"

	ErrGroceryNotFound     = errors.New("grocery not found")
	ErrInvalidPurchaseDate = errors.New("invalid purchase date")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrBillScanNotFound    = errors.New("bill scan not found")
	ErrNoItemsDetected     = errors.New("no grocery items detected on bill")
	ErrUnauthorizedAccess  = errors.New("unauthorized access to resource")
)

type (
	AddGroceryRequest struct {
		Name         string  `json:"name" validate:"required,max=255"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required,oneof=kg g L ml pcs"`
		Price        float64 `json:"price" validate:"gte=0"`
		PurchaseDate string  `json:"purchase_date" validate:"required"`
		ExpiryDate   string  `json:"expiry_date" validate:"omitempty"`
	}

	UpdateGroceryRequest struct {
		Name         string  `json:"name" validate:"omitempty,max=255"`
		Quantity     float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit         string  `json:"unit" validate:"omitempty,oneof=kg g L ml pcs"`
		Price        float64 `json:"price" validate:"omitempty,gte=0"`
		PurchaseDate string  `json:"purchase_date" validate:"omitempty"`
		ExpiryDate   string  `json:"expiry_date" validate:"omitempty"`
	}

	GroceryResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Quantity     float64    `json:"quantity"`
		Unit         string     `json:"unit"`
		Price        float64    `json:"price"`
		PurchaseDate time.Time  `json:"purchase_date"`
		ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
		Status       string     `json:"status"` // Safe, Warning, Expired
		CreatedAt    time.Time  `json:"created_at"`
	}

	UploadBillRequest struct {
		BillImage *multipart.FileHeader `json:"bill_image" form:"bill_image" validate:"required"`
	}

	UploadBillResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	BillScanResponse struct {
		ScanID   string            `json:"scan_id"`
		ImageURL string            `json:"image_url"`
		Status   string            `json:"status"`
		Items    []GroceryResponse `json:"items,omitempty"`
	}
)
