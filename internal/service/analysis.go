package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/scoring"
	"github.com/trichocare/backend/internal/types"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// ImageStore persists scalp images and returns a URL for the stored object.
type ImageStore interface {
	StoreScalpImage(ctx context.Context, testID, imageBase64 string) (string, error)
}

// AnalysisService owns the analysis lifecycle: intake, synchronous report
// generation, regeneration and clinician notes. Report generation is pure
// and fast, so records go straight from intake to Complete; any
// "processing" delay belongs to the presentation layer.
type AnalysisService struct {
	db     *gorm.DB
	engine *scoring.Engine
	images ImageStore
}

func NewAnalysisService(db *gorm.DB, engine *scoring.Engine, images ImageStore) *AnalysisService {
	return &AnalysisService{
		db:     db,
		engine: engine,
		images: images,
	}
}

// CreateAnalysis creates a record and generates its report in the same
// call. The scalp image, when present, is stored first; a storage failure
// only drops the image, never the analysis. Concurrent intakes can race on
// the sequential test ID, so a unique-index collision gets one retry with
// a fresh ID.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, req *types.CreateAnalysisRequest) (*models.Analysis, error) {
	analysis, err := s.createAnalysis(ctx, req)
	if isDuplicateTestID(err) {
		analysis, err = s.createAnalysis(ctx, req)
	}
	return analysis, err
}

func (s *AnalysisService) createAnalysis(ctx context.Context, req *types.CreateAnalysisRequest) (*models.Analysis, error) {
	testID, err := s.nextTestID(ctx)
	if err != nil {
		return nil, err
	}

	analysis := &models.Analysis{
		TestID:  testID,
		Answers: models.JSONBAnswers(req.Answers),
		Status:  models.AnalysisPending,
	}
	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer id: %w", err)
		}
		analysis.CustomerID = &customerID
	}

	if req.ScalpImageBase64 != "" && s.images != nil {
		url, err := s.images.StoreScalpImage(ctx, testID, req.ScalpImageBase64)
		if err != nil {
			log.Printf("Failed to store scalp image for %s: %v", testID, err)
		} else {
			analysis.ScalpImageURL = url
		}
	}

	report := s.engine.GenerateReport(scoring.Record{
		Answers: scoring.Answers(analysis.Answers),
	})
	jsonbReport := models.JSONBReport(report)
	now := time.Now().UTC()
	analysis.Report = &jsonbReport
	analysis.Status = models.AnalysisComplete
	analysis.CompletedAt = &now

	if err := s.db.WithContext(ctx).Create(analysis).Error; err != nil {
		return nil, err
	}
	return analysis, nil
}

// GetAnalysis retrieves an analysis by its test ID.
func (s *AnalysisService) GetAnalysis(ctx context.Context, testID string) (*models.Analysis, error) {
	var analysis models.Analysis
	err := s.db.WithContext(ctx).Preload("Customer").Where("test_id = ?", testID).First(&analysis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAnalysisNotFound
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// RegenerateReport recomputes the report from the record's current data.
// The new report fully replaces the old one; manual recommendations on the
// prior report survive the regeneration.
func (s *AnalysisService) RegenerateReport(ctx context.Context, testID string) (*models.Analysis, error) {
	analysis, err := s.GetAnalysis(ctx, testID)
	if err != nil {
		return nil, err
	}

	record := scoring.Record{Answers: scoring.Answers(analysis.Answers)}
	if analysis.Report != nil {
		prior := scoring.Report(*analysis.Report)
		record.Report = &prior
		record.Recommendations = prior.Recommendations
	}

	report := s.engine.GenerateReport(record)
	jsonbReport := models.JSONBReport(report)
	now := time.Now().UTC()
	analysis.Report = &jsonbReport
	analysis.Status = models.AnalysisComplete
	analysis.CompletedAt = &now

	if err := s.db.WithContext(ctx).Save(analysis).Error; err != nil {
		return nil, err
	}
	return analysis, nil
}

// UpdateClinicianNotes updates free-text notes; notes stay mutable after
// the report is generated.
func (s *AnalysisService) UpdateClinicianNotes(ctx context.Context, testID, notes string) (*models.Analysis, error) {
	analysis, err := s.GetAnalysis(ctx, testID)
	if err != nil {
		return nil, err
	}
	analysis.ClinicianNotes = notes
	if err := s.db.WithContext(ctx).Save(analysis).Error; err != nil {
		return nil, err
	}
	return analysis, nil
}

// DeleteAnalysis soft-deletes an analysis record.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, testID string) error {
	analysis, err := s.GetAnalysis(ctx, testID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(analysis).Error
}

// ListAnalyses lists analyses newest first, optionally filtered by
// customer.
func (s *AnalysisService) ListAnalyses(ctx context.Context, customerID *uuid.UUID) ([]*models.Analysis, error) {
	var analyses []models.Analysis
	query := s.db.WithContext(ctx).Preload("Customer").Order("created_at DESC")
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if err := query.Find(&analyses).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Analysis, len(analyses))
	for i := range analyses {
		result[i] = &analyses[i]
	}
	return result, nil
}

// nextTestID allocates the next sequential test ID. Soft-deleted records
// count too, the unique index covers them.
func (s *AnalysisService) nextTestID(ctx context.Context) (string, error) {
	var testIDs []string
	if err := s.db.WithContext(ctx).Model(&models.Analysis{}).Unscoped().Pluck("test_id", &testIDs).Error; err != nil {
		return "", err
	}
	max := 0
	for _, id := range testIDs {
		n, err := strconv.Atoi(strings.TrimLeft(strings.TrimPrefix(id, "T"), "0"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("T%04d", max+1), nil
}

// isDuplicateTestID reports whether err is a unique-index violation on the
// test ID, from either postgres or the SQLite test databases.
func isDuplicateTestID(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
