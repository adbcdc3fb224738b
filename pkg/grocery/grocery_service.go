package grocery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/entities"
	"github.com/rubeenavs/foodwise/internal/utils"
	"github.com/rubeenavs/foodwise/internal/utils/storage"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		AddGrocery(ctx context.Context, req domain.AddGroceryRequest, userID string) (domain.GroceryResponse, error)
		UpdateGrocery(ctx context.Context, id string, req domain.UpdateGroceryRequest, userID string) error
		DeleteGrocery(ctx context.Context, id string, userID string) error
		GetGroceries(ctx context.Context, userID string) ([]domain.GroceryResponse, error)
		GetUpcomingExpiries(ctx context.Context, userID string, withinDays int) ([]domain.GroceryResponse, error)
		UploadBill(ctx context.Context, req domain.UploadBillRequest, userID string) (domain.UploadBillResponse, error)
		GetBillScan(ctx context.Context, id string, userID string) (domain.BillScanResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		s3                storage.AwsS3
	}
)

func NewGroceryService(groceryRepository GroceryRepository, s3 storage.AwsS3) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		s3:                s3,
	}
}

func (s *groceryService) AddGrocery(ctx context.Context, req domain.AddGroceryRequest, userID string) (domain.GroceryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryResponse{}, domain.ErrParseUUID
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return domain.GroceryResponse{}, domain.ErrInvalidPurchaseDate
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.GroceryResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	batch := &entities.GroceryBatch{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Price:        req.Price,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
	}

	if err := s.groceryRepository.AddBatch(ctx, batch); err != nil {
		return domain.GroceryResponse{}, err
	}

	return toGroceryResponse(batch), nil
}

func (s *groceryService) UpdateGrocery(ctx context.Context, id string, req domain.UpdateGroceryRequest, userID string) error {
	batch, err := s.groceryRepository.GetBatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryNotFound
		}
		return err
	}

	if batch.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		batch.Name = req.Name
	}
	if req.Quantity > 0 {
		batch.Quantity = req.Quantity
	}
	if req.Unit != "" {
		batch.Unit = req.Unit
	}
	if req.Price > 0 {
		batch.Price = req.Price
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.ErrInvalidPurchaseDate
		}
		batch.PurchaseDate = purchaseDate
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		batch.ExpiryDate = &expiryDate
	}

	return s.groceryRepository.UpdateBatch(ctx, batch)
}

func (s *groceryService) DeleteGrocery(ctx context.Context, id string, userID string) error {
	batch, err := s.groceryRepository.GetBatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryNotFound
		}
		return err
	}

	if batch.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.groceryRepository.DeleteBatch(ctx, id)
}

func (s *groceryService) GetGroceries(ctx context.Context, userID string) ([]domain.GroceryResponse, error) {
	batches, err := s.groceryRepository.GetBatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryResponse, 0, len(batches))
	for _, batch := range batches {
		response = append(response, toGroceryResponse(batch))
	}
	return response, nil
}

func (s *groceryService) GetUpcomingExpiries(ctx context.Context, userID string, withinDays int) ([]domain.GroceryResponse, error) {
	now := time.Now()
	batches, err := s.groceryRepository.GetBatchesByExpiryRange(ctx, userID, now, now.AddDate(0, 0, withinDays))
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryResponse, 0, len(batches))
	for _, batch := range batches {
		response = append(response, toGroceryResponse(batch))
	}
	return response, nil
}

// UploadBill stores the bill image, then extracts grocery lines in the
// background: the image goes to the external OCR service, the raw text runs
// through the bill parser, and parsed items land in the ledger dated today.
func (s *groceryService) UploadBill(ctx context.Context, req domain.UploadBillRequest, userID string) (domain.UploadBillResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadBillResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("bill-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.BillImage, "bills", storage.AllowImage...)
	if err != nil {
		return domain.UploadBillResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	scan := &entities.BillScan{
		ID:       scanID,
		UserID:   userUUID,
		ImageURL: imageURL,
		Status:   "Pending",
	}

	if err := s.groceryRepository.CreateBillScan(ctx, scan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadBillResponse{}, err
	}

	go s.processBill(scan, userUUID, req.BillImage)

	return domain.UploadBillResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   "Pending",
	}, nil
}

func (s *groceryService) processBill(scan *entities.BillScan, userUUID uuid.UUID, billImage *multipart.FileHeader) {
	ctx := context.Background()

	fail := func(reason string) {
		scan.Status = "Failed"
		scan.RawText = reason
		if err := s.groceryRepository.UpdateBillScan(ctx, scan); err != nil {
			log.Printf("error updating bill scan %s: %v", scan.ID, err)
		}
	}

	rawText, err := s.extractBillText(ctx, billImage)
	if err != nil {
		fail(fmt.Sprintf("OCR error: %s", err.Error()))
		return
	}

	purchaseDate := time.Now().Truncate(24 * time.Hour)
	items := ParseBillText(rawText, purchaseDate)
	if len(items) == 0 {
		fail("no grocery items detected on bill")
		return
	}

	scanIDStr := scan.ID.String()
	batches := make([]*entities.GroceryBatch, 0, len(items))
	for _, item := range items {
		expiry := item.ExpiryDate
		batches = append(batches, &entities.GroceryBatch{
			ID:           uuid.New(),
			UserID:       userUUID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			Price:        item.Price,
			PurchaseDate: purchaseDate,
			ExpiryDate:   &expiry,
			BillScanID:   &scanIDStr,
		})
	}

	if err := s.groceryRepository.AddBatches(ctx, batches); err != nil {
		fail(fmt.Sprintf("error saving groceries: %s", err.Error()))
		return
	}

	scan.Status = "Processed"
	scan.RawText = rawText
	if err := s.groceryRepository.UpdateBillScan(ctx, scan); err != nil {
		log.Printf("error updating bill scan %s: %v", scan.ID, err)
	}
}

// extractBillText sends the image to the OCR service and returns the raw text.
// The OCR engine is a black box; only its text output is interpreted here.
func (s *groceryService) extractBillText(ctx context.Context, billImage *multipart.FileHeader) (string, error) {
	ocrURL := utils.GetConfig("OCR_SERVICE_URL")
	if ocrURL == "" {
		return "", fmt.Errorf("OCR_SERVICE_URL not configured")
	}

	file, err := billImage.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", billImage.Filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(fileBytes); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, ocrURL, body)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OCR service error: %s - %s", resp.Status, string(bodyBytes))
	}

	var ocrResponse struct {
		Success bool   `json:"success"`
		Text    string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ocrResponse); err != nil {
		return "", err
	}
	if !ocrResponse.Success || ocrResponse.Text == "" {
		return "", fmt.Errorf("OCR service returned no text")
	}

	return ocrResponse.Text, nil
}

func (s *groceryService) GetBillScan(ctx context.Context, id string, userID string) (domain.BillScanResponse, error) {
	scan, err := s.groceryRepository.GetBillScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BillScanResponse{}, domain.ErrBillScanNotFound
		}
		return domain.BillScanResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.BillScanResponse{}, domain.ErrUnauthorizedAccess
	}

	response := domain.BillScanResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
	}

	if scan.Status == "Processed" {
		batches, err := s.groceryRepository.GetBatchesByBillScan(ctx, id)
		if err != nil {
			return domain.BillScanResponse{}, err
		}
		for _, batch := range batches {
			response.Items = append(response.Items, toGroceryResponse(batch))
		}
	}

	return response, nil
}

func toGroceryResponse(batch *entities.GroceryBatch) domain.GroceryResponse {
	return domain.GroceryResponse{
		ID:           batch.ID.String(),
		Name:         batch.Name,
		Quantity:     batch.Quantity,
		Unit:         batch.Unit,
		Price:        batch.Price,
		PurchaseDate: batch.PurchaseDate,
		ExpiryDate:   batch.ExpiryDate,
		Status:       determineStatus(batch.ExpiryDate),
		CreatedAt:    batch.CreatedAt,
	}
}

func determineStatus(expiryDate *time.Time) string {
	if expiryDate == nil {
		return "Safe"
	}

	now := time.Now()
	if expiryDate.Before(now) {
		return "Expired"
	}
	if expiryDate.Before(now.AddDate(0, 0, 3)) {
		return "Warning"
	}
	return "Safe"
}
