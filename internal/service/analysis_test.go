package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/scoring"
	"github.com/trichocare/backend/internal/service"
	"github.com/trichocare/backend/internal/types"
)

// failingImageStore simulates an unreachable object store.
type failingImageStore struct{}

func (failingImageStore) StoreScalpImage(ctx context.Context, testID, imageBase64 string) (string, error) {
	return "", errors.New("bucket unavailable")
}

type fakeImageStore struct {
	stored map[string]string
}

func (f *fakeImageStore) StoreScalpImage(ctx context.Context, testID, imageBase64 string) (string, error) {
	if f.stored == nil {
		f.stored = map[string]string{}
	}
	url := "https://images.example/" + testID
	f.stored[testID] = url
	return url, nil
}

func TestCreateAnalysisGeneratesReportSynchronously(t *testing.T) {
	db := setupDB(t)
	analyses := service.NewAnalysisService(db, newEngine(t), nil)
	ctx := context.Background()

	analysis, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{
		Answers: scoring.Answers{
			"hair_density": scoring.Number(25),
			"damage_level": scoring.Number(75),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "T0001", analysis.TestID)
	assert.Equal(t, models.AnalysisComplete, analysis.Status)
	require.NotNil(t, analysis.CompletedAt)
	require.NotNil(t, analysis.Report)
	assert.Equal(t, 75, analysis.Report.HairLoss.LossRisk)
	assert.Equal(t, scoring.EngineVersion, analysis.Report.GeneratedBy)
}

func TestTestIDSequence(t *testing.T) {
	db := setupDB(t)
	analyses := service.NewAnalysisService(db, newEngine(t), nil)
	ctx := context.Background()

	first, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{Answers: scoring.Answers{}})
	require.NoError(t, err)
	second, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{Answers: scoring.Answers{}})
	require.NoError(t, err)
	assert.Equal(t, "T0001", first.TestID)
	assert.Equal(t, "T0002", second.TestID)

	// Deleting a record must not free its ID.
	require.NoError(t, analyses.DeleteAnalysis(ctx, second.TestID))
	third, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{Answers: scoring.Answers{}})
	require.NoError(t, err)
	assert.Equal(t, "T0003", third.TestID)
}

// A concurrent intake can claim the allocated ID between the max read and
// the insert; the loser retries with a fresh ID instead of surfacing the
// unique-index violation.
func TestTestIDCollisionRetries(t *testing.T) {
	db := setupDB(t)
	analyses := service.NewAnalysisService(db, newEngine(t), nil)
	ctx := context.Background()

	raced := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("claim_test_id", func(tx *gorm.DB) {
		if raced {
			return
		}
		raced = true
		require.NoError(t, db.Create(&models.Analysis{TestID: "T0001", Status: models.AnalysisPending}).Error)
	}))

	analysis, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{Answers: scoring.Answers{}})
	require.NoError(t, err)
	assert.Equal(t, "T0002", analysis.TestID)
}

func TestScalpImageFailureDoesNotBlockIntake(t *testing.T) {
	db := setupDB(t)
	analyses := service.NewAnalysisService(db, newEngine(t), failingImageStore{})
	ctx := context.Background()

	analysis, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{
		Answers:          scoring.Answers{},
		ScalpImageBase64: "aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Empty(t, analysis.ScalpImageURL)
	assert.Equal(t, models.AnalysisComplete, analysis.Status)
}

func TestScalpImageStored(t *testing.T) {
	db := setupDB(t)
	store := &fakeImageStore{}
	analyses := service.NewAnalysisService(db, newEngine(t), store)
	ctx := context.Background()

	analysis, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{
		Answers:          scoring.Answers{},
		ScalpImageBase64: "aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/T0001", analysis.ScalpImageURL)
	assert.Contains(t, store.stored, "T0001")
}

func TestRegenerateReportCarriesRecommendations(t *testing.T) {
	db := setupDB(t)
	analyses := service.NewAnalysisService(db, newEngine(t), nil)
	ctx := context.Background()

	created, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{
		Answers: scoring.Answers{
			"hair_density": scoring.Number(30),
			"damage_level": scoring.Number(80),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created.Report)

	// A clinician added a manual recommendation since generation.
	report := *created.Report
	report.Recommendations = append(report.Recommendations, "Custom follow-up plan")
	created.Report = &report
	require.NoError(t, db.Save(created).Error)

	regenerated, err := analyses.RegenerateReport(ctx, created.TestID)
	require.NoError(t, err)
	assert.Contains(t, regenerated.Report.Recommendations, "Custom follow-up plan")
	assert.Contains(t, regenerated.Report.Recommendations, scoring.RecReduceStyling)
	assert.Equal(t, created.Report.HairLoss.LossRisk, regenerated.Report.HairLoss.LossRisk)
}

func TestAnalysisNotFound(t *testing.T) {
	db := setupDB(t)
	analyses := service.NewAnalysisService(db, newEngine(t), nil)
	ctx := context.Background()

	_, err := analyses.GetAnalysis(ctx, "T9999")
	assert.ErrorIs(t, err, service.ErrAnalysisNotFound)

	_, err = analyses.RegenerateReport(ctx, "T9999")
	assert.ErrorIs(t, err, service.ErrAnalysisNotFound)

	err = analyses.DeleteAnalysis(ctx, "T9999")
	assert.ErrorIs(t, err, service.ErrAnalysisNotFound)
}

func TestUpdateClinicianNotes(t *testing.T) {
	db := setupDB(t)
	analyses := service.NewAnalysisService(db, newEngine(t), nil)
	ctx := context.Background()

	created, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{Answers: scoring.Answers{}})
	require.NoError(t, err)

	updated, err := analyses.UpdateClinicianNotes(ctx, created.TestID, "Follow up in 3 months")
	require.NoError(t, err)
	assert.Equal(t, "Follow up in 3 months", updated.ClinicianNotes)
	// Notes never touch the report.
	assert.Equal(t, created.Report.HairLoss, updated.Report.HairLoss)
}
