package services

import (
	"errors"
	"time"

	"github.com/lindltaylor7/monoessam/entity"
	"github.com/lindltaylor7/monoessam/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ProgramService drives the weekly planning workflow that feeds the
// explosion: create a program with its scheduled dishes and forecast
// portions, adjust portions, approve.
type ProgramService struct {
	DB       *gorm.DB
	Programs *repository.ProgramRepository
}

func NewProgramService(db *gorm.DB, programs *repository.ProgramRepository) *ProgramService {
	return &ProgramService{DB: db, Programs: programs}
}

// ----- DTOs from Controller -----

type ProgramItemIn struct {
	Date           string `json:"date" binding:"required"`
	MealType       string `json:"mealType" binding:"required"`
	DishCategoryID uint   `json:"dishCategoryId"`
	DishID         uint   `json:"dishId" binding:"required"`
}

type PortionIn struct {
	Date          string `json:"date" binding:"required"`
	MealType      string `json:"mealType" binding:"required"`
	PortionsCount int    `json:"portionsCount"`
}

type CreateProgramReq struct {
	CafeID    uint            `json:"cafeId" binding:"required"`
	StartDate string          `json:"startDate" binding:"required"`
	EndDate   string          `json:"endDate" binding:"required"`
	PlannedBy string          `json:"plannedBy"`
	Items     []ProgramItemIn `json:"items"`
	Portions  []PortionIn     `json:"portions"`
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// Create persists the header, its items and its portions in one tx.
func (s *ProgramService) Create(req *CreateProgramReq) (*entity.WeeklyProgram, error) {
	start, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.New("startDate must be YYYY-MM-DD")
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return nil, errors.New("endDate must be YYYY-MM-DD")
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	program := entity.WeeklyProgram{
		CafeID:    req.CafeID,
		StartDate: start,
		EndDate:   end,
		Status:    entity.ProgramDraft,
		PlannedBy: req.PlannedBy,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Programs.CreateProgram(tx, &program); err != nil {
			return err
		}
		for _, in := range req.Items {
			date, err := ParseDate(in.Date)
			if err != nil {
				return errors.New("item date must be YYYY-MM-DD")
			}
			item := entity.WeeklyProgramItem{
				WeeklyProgramID: program.ID,
				Date:            date,
				MealType:        in.MealType,
				DishCategoryID:  in.DishCategoryID,
				DishID:          in.DishID,
			}
			if err := s.Programs.CreateItem(tx, &item); err != nil {
				return err
			}
		}
		for _, in := range req.Portions {
			date, err := ParseDate(in.Date)
			if err != nil {
				return errors.New("portion date must be YYYY-MM-DD")
			}
			dp := entity.DailyPortion{
				WeeklyProgramID: program.ID,
				Date:            date,
				MealType:        in.MealType,
				PortionsCount:   in.PortionsCount,
			}
			if err := s.Programs.CreatePortion(tx, &dp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// SetPortion upserts the forecast for one date and meal slot.
func (s *ProgramService) SetPortion(programID uint, in *PortionIn) error {
	if _, err := s.Programs.GetProgram(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	return s.Programs.UpsertPortion(programID, date, in.MealType, in.PortionsCount)
}

// Approve flips a draft program to aprobado. It reports whether the
// status actually changed, so an already-approved program is
// distinguishable from a fresh approval.
func (s *ProgramService) Approve(programID uint) (bool, error) {
	ok, err := s.Programs.ApproveProgram(programID)
	if err != nil {
		return false, err
	}
	if !ok {
		// either missing or already approved
		if _, err := s.Programs.GetProgram(programID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrProgramNotFound
			}
			return false, err
		}
	}
	return ok, nil
}

// Detail returns the program with items and portions for display.
type ProgramDetail struct {
	Program  *entity.WeeklyProgram      `json:"program"`
	Items    []entity.WeeklyProgramItem `json:"items"`
	Portions []entity.DailyPortion      `json:"portions"`
}

func (s *ProgramService) Detail(programID uint) (*ProgramDetail, error) {
	program, err := s.Programs.GetProgram(programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	items, err := s.Programs.GetProgramItems(program.ID)
	if err != nil {
		return nil, err
	}
	portions, err := s.Programs.GetProgramPortions(program.ID)
	if err != nil {
		return nil, err
	}
	return &ProgramDetail{Program: program, Items: items, Portions: portions}, nil
}
