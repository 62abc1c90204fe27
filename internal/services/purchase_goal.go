package services

import (
	"errors"
	"math"
	"time"

	"github.com/gfmartins/fintrack/internal/models"
	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("purchase goal not found")

const defaultPageSize = 20

type PurchaseGoalService struct {
	db *gorm.DB
}

func NewPurchaseGoalService(db *gorm.DB) *PurchaseGoalService {
	return &PurchaseGoalService{db: db}
}

type CreateGoalRequest struct {
	Name               string  `json:"name" binding:"required,max=200"`
	Category           string  `json:"category"`
	TargetAmount       float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmountSaved float64 `json:"current_amount_saved" binding:"gte=0"`
	Priority           string  `json:"priority"`
	Deadline           string  `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Notes              string  `json:"notes"`
}

// UpdateGoalRequest carries partial updates; nil fields are left untouched.
type UpdateGoalRequest struct {
	Name               *string  `json:"name"`
	Category           *string  `json:"category"`
	TargetAmount       *float64 `json:"target_amount"`
	CurrentAmountSaved *float64 `json:"current_amount_saved"`
	Priority           *string  `json:"priority"`
	Deadline           *string  `json:"deadline"`
	Notes              *string  `json:"notes"`
}

type GoalListRequest struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Priority string `form:"priority"`
	Status   string `form:"status"` // active, completed
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

type GoalListResponse struct {
	Data  []models.PurchaseGoal `json:"data"`
	Total int64                 `json:"total"`
}

type AddSavingRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required,datetime=2006-01-02"`
	Notes  string  `json:"notes"`
}

type GoalsSummary struct {
	TotalGoals           int64   `json:"totalGoals"`
	Completed            int64   `json:"completed"`
	Active               int64   `json:"active"`
	Overdue              int64   `json:"overdue"`
	PercentCompleted     int     `json:"percentCompleted"`
	TotalSavedActive     float64 `json:"totalSavedActive"`
	TotalRemainingActive float64 `json:"totalRemainingActive"`
}

func (s *PurchaseGoalService) List(profileID uint, req *GoalListRequest) (*GoalListResponse, error) {
	query := s.db.Model(&models.PurchaseGoal{}).Where("profile_id = ?", profileID)

	if req.Q != "" {
		query = query.Where("name LIKE ?", "%"+req.Q+"%")
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Priority != "" {
		query = query.Where("priority = ?", req.Priority)
	}
	switch req.Status {
	case "active":
		query = query.Where("is_completed = ?", false)
	case "completed":
		query = query.Where("is_completed = ?", true)
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

	goals := []models.PurchaseGoal{}
	err := query.
		Order("is_completed ASC, updated_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	return &GoalListResponse{Data: goals, Total: total}, nil
}

func (s *PurchaseGoalService) Create(profileID uint, req *CreateGoalRequest) (*models.PurchaseGoal, error) {
	goal := models.PurchaseGoal{
		ProfileID:          profileID,
		Name:               req.Name,
		Category:           req.Category,
		TargetAmount:       req.TargetAmount,
		CurrentAmountSaved: req.CurrentAmountSaved,
		Priority:           req.Priority,
		Deadline:           req.Deadline,
		Notes:              req.Notes,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *PurchaseGoalService) Update(profileID, id uint, req *UpdateGoalRequest) error {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.TargetAmount != nil {
		updates["target_amount"] = *req.TargetAmount
	}
	if req.CurrentAmountSaved != nil {
		updates["current_amount_saved"] = *req.CurrentAmountSaved
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Deadline != nil {
		updates["deadline"] = *req.Deadline
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return nil
	}

	res := s.db.Model(&models.PurchaseGoal{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes the goal and its savings history.
func (s *PurchaseGoalService) Delete(profileID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND profile_id = ?", id, profileID).Delete(&models.PurchaseGoal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrGoalNotFound
		}
		return tx.Where("goal_id = ?", id).Delete(&models.SavingsTransaction{}).Error
	})
}

func (s *PurchaseGoalService) Complete(profileID, id uint) error {
	now := time.Now()
	res := s.db.Model(&models.PurchaseGoal{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Updates(map[string]interface{}{
			"is_completed": true,
			"completed_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// AddSaving records a deposit and bumps the goal's saved amount atomically.
func (s *PurchaseGoalService) AddSaving(profileID, goalID uint, req *AddSavingRequest) (*models.SavingsTransaction, error) {
	var goal models.PurchaseGoal
	if err := s.db.Where("id = ? AND profile_id = ?", goalID, profileID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	saving := models.SavingsTransaction{
		GoalID: goalID,
		Amount: req.Amount,
		Date:   req.Date,
		Notes:  req.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&saving).Error; err != nil {
			return err
		}
		return tx.Model(&models.PurchaseGoal{}).
			Where("id = ?", goalID).
			Update("current_amount_saved", gorm.Expr("current_amount_saved + ?", req.Amount)).Error
	})
	if err != nil {
		return nil, err
	}

	return &saving, nil
}

func (s *PurchaseGoalService) ListSavings(profileID, goalID uint) ([]models.SavingsTransaction, error) {
	var goal models.PurchaseGoal
	if err := s.db.Where("id = ? AND profile_id = ?", goalID, profileID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	savings := []models.SavingsTransaction{}
	err := s.db.Where("goal_id = ?", goalID).
		Order("date DESC, id DESC").
		Find(&savings).Error
	return savings, err
}

func (s *PurchaseGoalService) Summary(profileID uint) (*GoalsSummary, error) {
	var summary GoalsSummary

	base := func() *gorm.DB {
		return s.db.Model(&models.PurchaseGoal{}).Where("profile_id = ?", profileID)
	}

	if err := base().Count(&summary.TotalGoals).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_completed = ?", true).Count(&summary.Completed).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_completed = ?", false).Count(&summary.Active).Error; err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	if err := base().
		Where("is_completed = ? AND deadline <> '' AND deadline < ?", false, today).
		Count(&summary.Overdue).Error; err != nil {
		return nil, err
	}

	var totals struct {
		Saved     float64
		Remaining float64
	}
	if err := base().
		Where("is_completed = ?", false).
		Select("COALESCE(SUM(current_amount_saved), 0) AS saved, " +
			"COALESCE(SUM(target_amount - current_amount_saved), 0) AS remaining").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	summary.TotalSavedActive = totals.Saved
	summary.TotalRemainingActive = totals.Remaining

	if summary.TotalGoals > 0 {
		summary.PercentCompleted = int(math.Round(float64(summary.Completed) / float64(summary.TotalGoals) * 100))
	}

	return &summary, nil
}
