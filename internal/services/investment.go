package services

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/gorm"
)

var ErrInvestmentNotFound = errors.New("investment not found")

type InvestmentService struct {
	db *gorm.DB
}

func NewInvestmentService(db *gorm.DB) *InvestmentService {
	return &InvestmentService{db: db}
}

type CreateInvestmentRequest struct {
	Name           string  `json:"name" binding:"required,max=200"`
	Category       string  `json:"category"`
	Broker         string  `json:"broker"`
	InvestedAmount float64 `json:"invested_amount" binding:"required,gt=0"`
	CurrentValue   float64 `json:"current_value" binding:"gte=0"`
}

type UpdateInvestmentRequest struct {
	Name           *string  `json:"name"`
	Category       *string  `json:"category"`
	Broker         *string  `json:"broker"`
	InvestedAmount *float64 `json:"invested_amount"`
	CurrentValue   *float64 `json:"current_value"`
}

type InvestmentListRequest struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Broker   string `form:"broker"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

type InvestmentListResponse struct {
	Data  []models.Investment `json:"data"`
	Total int64               `json:"total"`
}

type InvestmentCategorySummary struct {
	Category     string  `json:"category"`
	Invested     float64 `json:"invested"`
	CurrentValue float64 `json:"currentValue"`
	Count        int64   `json:"count"`
}

type InvestmentSummary struct {
	TotalInvested     float64                     `json:"totalInvested"`
	TotalCurrentValue float64                     `json:"totalCurrentValue"`
	TotalReturn       float64                     `json:"totalReturn"`
	ReturnPercent     float64                     `json:"returnPercent"`
	Count             int64                       `json:"count"`
	Categories        []InvestmentCategorySummary `json:"categories"`
}

func (s *InvestmentService) List(profileID uint, req *InvestmentListRequest) (*InvestmentListResponse, error) {
	query := s.db.Model(&models.Investment{}).Where("profile_id = ?", profileID)

	if req.Q != "" {
		query = query.Where("name LIKE ?", "%"+req.Q+"%")
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Broker != "" {
		query = query.Where("broker = ?", req.Broker)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	investments := []models.Investment{}
	err := query.
		Order("updated_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&investments).Error
	if err != nil {
		return nil, err
	}

	return &InvestmentListResponse{Data: investments, Total: total}, nil
}

func (s *InvestmentService) Create(profileID uint, req *CreateInvestmentRequest) (*models.Investment, error) {
	inv := models.Investment{
		ProfileID:      profileID,
		Name:           req.Name,
		Category:       req.Category,
		Broker:         req.Broker,
		InvestedAmount: req.InvestedAmount,
		CurrentValue:   req.CurrentValue,
	}
	// a fresh position is worth what was put in until marked otherwise
	if inv.CurrentValue == 0 {
		inv.CurrentValue = inv.InvestedAmount
	}
	if err := s.db.Create(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *InvestmentService) Update(profileID, id uint, req *UpdateInvestmentRequest) error {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Broker != nil {
		updates["broker"] = *req.Broker
	}
	if req.InvestedAmount != nil {
		updates["invested_amount"] = *req.InvestedAmount
	}
	if req.CurrentValue != nil {
		updates["current_value"] = *req.CurrentValue
	}
	if len(updates) == 0 {
		return nil
	}

	res := s.db.Model(&models.Investment{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvestmentNotFound
	}
	return nil
}

func (s *InvestmentService) Delete(profileID, id uint) error {
	res := s.db.Where("id = ? AND profile_id = ?", id, profileID).Delete(&models.Investment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvestmentNotFound
	}
	return nil
}

func (s *InvestmentService) Summary(profileID uint) (*InvestmentSummary, error) {
	var summary InvestmentSummary

	var totals struct {
		Invested float64
		Current  float64
		Count    int64
	}
	err := s.db.Model(&models.Investment{}).
		Where("profile_id = ?", profileID).
		Select("COALESCE(SUM(invested_amount), 0) AS invested, " +
			"COALESCE(SUM(current_value), 0) AS current, " +
			"COUNT(*) AS count").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	summary.TotalInvested = totals.Invested
	summary.TotalCurrentValue = totals.Current
	summary.TotalReturn = totals.Current - totals.Invested
	summary.Count = totals.Count
	if totals.Invested > 0 {
		summary.ReturnPercent = summary.TotalReturn / totals.Invested * 100
	}

	summary.Categories = []InvestmentCategorySummary{}
	err = s.db.Model(&models.Investment{}).
		Where("profile_id = ?", profileID).
		Select("category, " +
			"COALESCE(SUM(invested_amount), 0) AS invested, " +
			"COALESCE(SUM(current_value), 0) AS current_value, " +
			"COUNT(*) AS count").
		Group("category").
		Order("invested DESC").
		Scan(&summary.Categories).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
