package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/internal/analysis"
	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/scoring"
	"github.com/pageza/healthscan/backend/internal/types"
)

// ScanService analyzes product photos against the caller's profile and
// keeps the scan history.
type ScanService struct {
	db       *gorm.DB
	profiles IProfileService
	analyzer ImageAnalyzer
	images   ImageStore
	now      func() time.Time
}

// Ensure ScanService implements IScanService
var _ IScanService = (*ScanService)(nil)

// NewScanService creates a ScanService. images may be nil, in which case
// photos are analyzed but not kept.
func NewScanService(db *gorm.DB, profiles IProfileService, analyzer ImageAnalyzer, images ImageStore) *ScanService {
	return &ScanService{
		db:       db,
		profiles: profiles,
		analyzer: analyzer,
		images:   images,
		now:      time.Now,
	}
}

// SetClock replaces the time source used to stamp scans.
func (s *ScanService) SetClock(now func() time.Time) {
	s.now = now
}

// Scan runs the full pipeline for one photo and persists the result.
func (s *ScanService) Scan(ctx context.Context, userID uuid.UUID, image []byte) (*types.ScannedProduct, error) {
	if len(image) == 0 {
		return nil, ErrUnsupportedImage
	}
	contentType := http.DetectContentType(image)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedImage, contentType)
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	extraction, err := s.analyzer.Analyze(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("image analysis failed: %w", err)
	}

	scanID := uuid.New()
	imageKey := ""
	if s.images != nil {
		imageKey = imageKeyFor(userID, scanID, contentType)
		if err := s.images.Save(ctx, imageKey, image, contentType); err != nil {
			// The analysis is still useful without the photo.
			log.Printf("[ScanService] Failed to store image for scan %s: %v", scanID, err)
			imageKey = ""
		}
	}

	product := analysis.Analyze(scanID.String(), *extraction, profile, "", s.now())
	if err := s.db.WithContext(ctx).Create(models.NewScanRecord(userID, imageKey, product)).Error; err != nil {
		s.removeImage(ctx, imageKey)
		return nil, fmt.Errorf("failed to save scan: %w", err)
	}
	product.ImageURL = s.imageURL(ctx, imageKey)

	log.Printf("[ScanService] User %s scanned %q: score=%d risk=%s warnings=%d",
		userID, product.Name, product.CompatibilityScore, product.RiskLevel, len(product.Warnings))
	return product, nil
}

// ListScans returns the user's scans, newest first.
func (s *ScanService) ListScans(ctx context.Context, userID uuid.UUID) ([]*types.ScannedProduct, error) {
	records, err := s.records(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]*types.ScannedProduct, 0, len(records))
	for i := range records {
		products = append(products, s.toProduct(ctx, &records[i]))
	}
	return products, nil
}

// History returns the user's health-score entries, newest first. Image links
// are not signed.
func (s *ScanService) History(ctx context.Context, userID uuid.UUID) ([]types.HealthScoreEntry, error) {
	records, err := s.records(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]types.HealthScoreEntry, 0, len(records))
	for i := range records {
		entries = append(entries, scoring.NewEntry(records[i].ToProduct()))
	}
	return entries, nil
}

func (s *ScanService) GetScan(ctx context.Context, userID uuid.UUID, scanID string) (*types.ScannedProduct, error) {
	record, err := s.find(ctx, userID, scanID)
	if err != nil {
		return nil, err
	}
	return s.toProduct(ctx, record), nil
}

func (s *ScanService) DeleteScan(ctx context.Context, userID uuid.UUID, scanID string) error {
	record, err := s.find(ctx, userID, scanID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(record).Error; err != nil {
		return fmt.Errorf("failed to delete scan: %w", err)
	}
	s.removeImage(ctx, record.ImageKey)
	log.Printf("[ScanService] User %s deleted scan %s", userID, scanID)
	return nil
}

func (s *ScanService) records(ctx context.Context, userID uuid.UUID) ([]models.ScanRecord, error) {
	var records []models.ScanRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scanned_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	return records, nil
}

func (s *ScanService) find(ctx context.Context, userID uuid.UUID, scanID string) (*models.ScanRecord, error) {
	id, err := uuid.Parse(scanID)
	if err != nil {
		return nil, ErrScanNotFound
	}
	var record models.ScanRecord
	err = s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scan: %w", err)
	}
	return &record, nil
}

func (s *ScanService) toProduct(ctx context.Context, record *models.ScanRecord) *types.ScannedProduct {
	p := record.ToProduct()
	p.ImageURL = s.imageURL(ctx, record.ImageKey)
	return p
}

func (s *ScanService) imageURL(ctx context.Context, key string) string {
	if s.images == nil || key == "" {
		return ""
	}
	url, err := s.images.URL(ctx, key)
	if err != nil {
		log.Printf("[ScanService] Failed to sign image URL for %s: %v", key, err)
		return ""
	}
	return url
}

// removeImage deletes a stored photo, logging failures.
func (s *ScanService) removeImage(ctx context.Context, key string) {
	if s.images == nil || key == "" {
		return
	}
	if err := s.images.Delete(ctx, key); err != nil {
		log.Printf("[ScanService] Failed to remove image %s: %v", key, err)
	}
}

func imageKeyFor(userID, scanID uuid.UUID, contentType string) string {
	ext := ".img"
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	return fmt.Sprintf("scans/%s/%s%s", userID, scanID, ext)
}
