package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/types"
)

// DashboardService aggregates the numbers behind the admin dashboard.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GetStats computes customer and analysis counts plus risk aggregates over
// the generated reports. Report JSON is dialect-agnostic, so the risk
// aggregation runs in Go rather than in the database.
func (s *DashboardService) GetStats(ctx context.Context) (*types.DashboardStats, error) {
	stats := &types.DashboardStats{TopCauses: map[string]int{}}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Customer{}).Count(&stats.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Analysis{}).Count(&stats.Analyses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Analysis{}).Where("status = ?", models.AnalysisPending).Count(&stats.PendingAnalyses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Analysis{}).Where("status = ?", models.AnalysisComplete).Count(&stats.CompleteAnalyses).Error; err != nil {
		return nil, err
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := db.Model(&models.Analysis{}).Where("created_at >= ?", weekAgo).Count(&stats.AnalysesThisWeek).Error; err != nil {
		return nil, err
	}

	var analyses []models.Analysis
	if err := db.Where("status = ?", models.AnalysisComplete).Find(&analyses).Error; err != nil {
		return nil, err
	}
	riskSum := 0
	scored := 0
	for _, a := range analyses {
		if a.Report == nil {
			continue
		}
		riskSum += a.Report.HairLoss.LossRisk
		scored++
		for _, cause := range a.Report.HairLoss.Causes {
			stats.TopCauses[cause]++
		}
	}
	if scored > 0 {
		stats.AverageLossRisk = float64(riskSum) / float64(scored)
	}

	return stats, nil
}
