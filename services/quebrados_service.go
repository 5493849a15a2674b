package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/lindltaylor7/monoessam/entity"
	"github.com/lindltaylor7/monoessam/pkg/fixed"
	"github.com/lindltaylor7/monoessam/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fallback label when a recipe line's unit does not resolve
const unknownUnit = "UN"

// QuebradosService turns a planned menu into a consolidated purchase
// order: for every scheduled dish it multiplies the recipe by the
// forecast portions, folds the contributions per ingredient and persists
// the result as header + items in one transaction.
type QuebradosService struct {
	DB       *gorm.DB
	Programs *repository.ProgramRepository
	Orders   *repository.PurchaseOrderRepository
}

func NewQuebradosService(db *gorm.DB, programs *repository.ProgramRepository, orders *repository.PurchaseOrderRepository) *QuebradosService {
	return &QuebradosService{DB: db, Programs: programs, Orders: orders}
}

// Requirement is one consolidated ingredient need, ready to become an
// order item.
type Requirement struct {
	IngredientID   uint            `json:"ingredientId"`
	IngredientName string          `json:"ingredientName"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	UnitCost       decimal.Decimal `json:"unitCost"`
}

// UnitConflict reports an ingredient whose contributing recipe lines
// declared more than one unit. Quantities are still raw-summed under the
// first unit seen; the conflict is surfaced so the catalog can be fixed.
type UnitConflict struct {
	IngredientID uint     `json:"ingredientId"`
	Units        []string `json:"units"`
}

// ExplosionResult is the persisted order plus data-quality findings.
type ExplosionResult struct {
	Order         *entity.PurchaseOrder `json:"order"`
	UnitConflicts []UnitConflict        `json:"unitConflicts"`
}

// GenerateFromProgram explodes one weekly program into a purchase order
// linked to it. A program without scheduling data yields a valid empty
// order; only a missing program id is an error.
func (s *QuebradosService) GenerateFromProgram(programID uint, notes string) (*ExplosionResult, error) {
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

	agg := s.aggregate(items, portions)

	pid := program.ID
	order := &entity.PurchaseOrder{
		WeeklyProgramID: &pid,
		CafeID:          program.CafeID,
		Status:          entity.OrderPending,
		Notes:           notes,
	}
	persisted, err := s.Materialize(order, agg.requirements())
	if err != nil {
		return nil, err
	}
	return &ExplosionResult{Order: persisted, UnitConflicts: agg.conflicts()}, nil
}

// GenerateFromSchedule explodes raw scheduling facts for a cafe and date
// window, across programs, into a standalone draft order.
func (s *QuebradosService) GenerateFromSchedule(cafeID uint, start, end time.Time, notes string) (*ExplosionResult, error) {
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	items, err := s.Programs.ListItemsInRange(cafeID, start, end)
	if err != nil {
		return nil, err
	}
	portions, err := s.Programs.ListPortionsInRange(cafeID, start, end)
	if err != nil {
		return nil, err
	}

	agg := s.aggregate(items, portions)

	if notes == "" {
		notes = fmt.Sprintf("Materials for %s - %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	order := &entity.PurchaseOrder{
		CafeID: cafeID,
		Status: entity.OrderDraft,
		Notes:  notes,
	}
	persisted, err := s.Materialize(order, agg.requirements())
	if err != nil {
		return nil, err
	}
	return &ExplosionResult{Order: persisted, UnitConflicts: agg.conflicts()}, nil
}

// Materialize persists header + one item per requirement atomically.
// Quantities are stored at 4 places, estimated costs at 2. On any failure
// nothing is written.
func (s *QuebradosService) Materialize(order *entity.PurchaseOrder, reqs []Requirement) (*entity.PurchaseOrder, error) {
	order.Code = uuid.NewString()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.CreateOrder(tx, order); err != nil {
			return err
		}
		for _, req := range reqs {
			qty := fixed.Quantity(req.Quantity)
			item := entity.PurchaseOrderItem{
				PurchaseOrderID: order.ID,
				IngredientID:    req.IngredientID,
				TotalAmount:     qty,
				Unit:            req.Unit,
				EstimatedCost:   fixed.Cost(qty, req.UnitCost),
			}
			if err := s.Orders.CreateItem(tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Orders.GetOrderWithItems(order.ID)
}

// ---------------- Explosion internals ----------------

// contribution of one recipe line at a given portion count
type contribution struct {
	ingredientID uint
	name         string
	quantity     decimal.Decimal
	unit         string
	unitCost     decimal.Decimal
}

// Forecasts are program-scoped: in schedule mode several programs of
// the same cafe can cover the same date and meal slot, each with its
// own headcount, so the program id is part of the key.
func portionKey(programID uint, date time.Time, mealType string) string {
	return fmt.Sprintf("%d_%s_%s", programID, date.Format("2006-01-02"), mealType)
}

// aggregate walks every scheduled item, resolves its forecast and folds
// the expanded recipe lines into a requirement map. Order of items does
// not matter, addition commutes.
func (s *QuebradosService) aggregate(items []entity.WeeklyProgramItem, portions []entity.DailyPortion) *requirementMap {
	index := make(map[string]int, len(portions))
	for _, p := range portions {
		index[portionKey(p.WeeklyProgramID, p.Date, p.MealType)] = p.PortionsCount
	}

	m := newRequirementMap()
	for _, item := range items {
		count := index[portionKey(item.WeeklyProgramID, item.Date, item.MealType)]
		if count <= 0 {
			continue // no service that day/slot
		}
		if item.Dish.ID == 0 {
			log.Printf("quebrados: program item %d has no resolvable dish %d, skipping", item.ID, item.DishID)
			continue
		}
		for _, c := range expandDish(&item.Dish, count) {
			m.add(c)
		}
	}
	return m
}

// expandDish yields the gross contribution of every recipe line of a
// dish at the given portion count. Purchasing covers waste, so a line
// with a yield factor below 1 is scaled up to its pre-waste amount.
func expandDish(dish *entity.Dish, portionCount int) []contribution {
	if portionCount <= 0 {
		return nil
	}

	out := make([]contribution, 0, len(dish.Recipes))
	for _, line := range dish.Recipes {
		if !line.Quantity.IsPositive() {
			continue
		}

		perPortion := line.Quantity
		switch {
		case !line.YieldFactor.IsPositive():
			log.Printf("quebrados: recipe line %d has yield factor %s, treating as 1", line.ID, line.YieldFactor)
		case !line.YieldFactor.Equal(decimal.NewFromInt(1)):
			perPortion = perPortion.Div(line.YieldFactor)
		}

		out = append(out, contribution{
			ingredientID: line.IngredientID,
			name:         line.Ingredient.Name,
			quantity:     perPortion.Mul(decimal.NewFromInt(int64(portionCount))),
			unit:         resolveUnit(&line),
			unitCost:     resolveCost(&line),
		})
	}
	return out
}

// resolveUnit maps a line to its unit abbreviation, falling back to a
// generic label when the catalog has a gap.
func resolveUnit(line *entity.Recipe) string {
	if line.Unit.ID == 0 || line.Unit.Abbreviation == "" {
		log.Printf("quebrados: unit %d of recipe line %d did not resolve, using %s", line.UnitID, line.ID, unknownUnit)
		return unknownUnit
	}
	return line.Unit.Abbreviation
}

// resolveCost prefers the per-line override, then the ingredient
// standing cost, then zero. A missing cost is a data gap, not an error.
func resolveCost(line *entity.Recipe) decimal.Decimal {
	if line.UnitCost != nil {
		return *line.UnitCost
	}
	if line.Ingredient.Cost != nil {
		return *line.Ingredient.Cost
	}
	return decimal.Zero
}

// requirementMap folds contributions per ingredient. The first
// occurrence seeds unit, cost and name; later ones only add quantity.
// Every distinct unit label seen is tracked to report mixing.
type requirementMap struct {
	byIngredient map[uint]*Requirement
	unitsSeen    map[uint][]string
}

func newRequirementMap() *requirementMap {
	return &requirementMap{
		byIngredient: make(map[uint]*Requirement),
		unitsSeen:    make(map[uint][]string),
	}
}

func (m *requirementMap) add(c contribution) {
	if req, ok := m.byIngredient[c.ingredientID]; ok {
		req.Quantity = req.Quantity.Add(c.quantity)
	} else {
		m.byIngredient[c.ingredientID] = &Requirement{
			IngredientID:   c.ingredientID,
			IngredientName: c.name,
			Quantity:       c.quantity,
			Unit:           c.unit,
			UnitCost:       c.unitCost,
		}
	}

	seen := m.unitsSeen[c.ingredientID]
	for _, u := range seen {
		if u == c.unit {
			return
		}
	}
	m.unitsSeen[c.ingredientID] = append(seen, c.unit)
}

// requirements returns the consolidated lines sorted by ingredient id,
// so generated orders list items in a stable order.
func (m *requirementMap) requirements() []Requirement {
	out := make([]Requirement, 0, len(m.byIngredient))
	for _, req := range m.byIngredient {
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IngredientID < out[j].IngredientID })
	return out
}

// conflicts lists ingredients seen under more than one unit label. The
// totals for these are raw sums across units and need review.
func (m *requirementMap) conflicts() []UnitConflict {
	var out []UnitConflict
	for id, units := range m.unitsSeen {
		if len(units) > 1 {
			log.Printf("quebrados: ingredient %d mixes units %v, quantities were raw-summed", id, units)
			out = append(out, UnitConflict{IngredientID: id, Units: units})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IngredientID < out[j].IngredientID })
	return out
}
