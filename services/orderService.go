package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nsdrink-pos/config"
	"nsdrink-pos/dtos"
	"nsdrink-pos/ledger"
	"nsdrink-pos/models"
	"nsdrink-pos/utils"
)

var (
	ErrOrderNotFound = errors.New("Order not found")
	ErrForbidden     = errors.New("Not allowed to change this order")
	ErrReopenFirst   = errors.New("Order is paid; reopen it before marking it unpaid")
	ErrInvalidDate   = errors.New("Dates must be formatted YYYY-MM-DD")
)

// Actor is the authenticated caller of a mutating request.
type Actor struct {
	Phone string
	Role  string
	IP    string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

type OrderService interface {
	Create(input dtos.CreateOrderInput, actor Actor) (*models.Order, error)
	Update(id uint, input dtos.UpdateOrderInput, actor Actor) (*models.Order, error)
	Reopen(id uint, actor Actor) (*models.Order, error)
	Get(id uint) (*models.Order, error)
	Last() (*models.Order, error)
	List(q dtos.PageQuery) (*dtos.OrderPage, error)
	DiscountNotes(q dtos.PageQuery) (*dtos.OrderPage, error)
	Completed(q dtos.CompletedQuery) (*dtos.CompletedResponse, error)
	Dashboard() (*dtos.DashboardResponse, error)
}

type orderService struct {
	now func() time.Time
}

func NewOrderService() OrderService {
	return &orderService{now: time.Now}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, id ASC")
	})
}

func (s *orderService) location() *time.Location {
	if config.App.Location != nil {
		return config.App.Location
	}
	return time.Local
}

func (s *orderService) Create(input dtos.CreateOrderInput, actor Actor) (*models.Order, error) {
	items := dtos.ToOrderItems(input.Items)
	if len(items) == 0 {
		return nil, ledger.ErrEmptyCart
	}
	if err := ledger.ValidateItems(items); err != nil {
		return nil, err
	}
	if input.TableNumber < 1 {
		return nil, ledger.ErrInvalidTable
	}

	now := s.now().In(s.location())
	year, month := ledger.Period(now)

	order := models.Order{
		Year:          year,
		Month:         month,
		TableNumber:   input.TableNumber,
		Items:         numbered(items),
		Status:        models.StatusPending,
		PaymentMethod: models.PaymentCash,
		Note:          input.Note,
		CreatedBy:     actor.Phone,
		UpdatedBy:     actor.Phone,
	}
	ledger.Recompute(&order)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		n, err := nextOrderNumber(tx, year, month)
		if err != nil {
			return err
		}
		order.OrderNumber = n
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return utils.CreateOrderAuditLog(tx, "create", order.ID, nil, &order, actor.Phone, actor.IP,
			fmt.Sprintf("Order #%d created for table %d", order.OrderNumber, order.TableNumber))
	})
	if err != nil {
		return nil, err
	}
	return s.Get(order.ID)
}

// nextOrderNumber bumps the per-month counter under a row lock. A missing
// counter is seeded from the highest number already stored for the month.
func nextOrderNumber(tx *gorm.DB, year, month int) (int, error) {
	var seq models.OrderSequence
	res := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("year = ? AND month = ?", year, month).
		Limit(1).
		Find(&seq)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		var highest int
		if err := tx.Unscoped().Model(&models.Order{}).
			Where("year = ? AND month = ?", year, month).
			Select("COALESCE(MAX(order_number), 0)").
			Scan(&highest).Error; err != nil {
			return 0, err
		}
		seq = models.OrderSequence{Year: year, Month: month, Value: highest + 1}
		if err := tx.Create(&seq).Error; err != nil {
			return 0, err
		}
		return seq.Value, nil
	}

	seq.Value++
	if err := tx.Model(&models.OrderSequence{}).
		Where("year = ? AND month = ?", year, month).
		Update("value", seq.Value).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

func (s *orderService) Update(id uint, input dtos.UpdateOrderInput, actor Actor) (*models.Order, error) {
	if input.Phone != "" && input.Phone != actor.Phone && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	var saved models.Order
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var current models.Order
		if err := withItems(tx).First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		before := current
		before.Items = append([]models.OrderItem(nil), current.Items...)

		settle := false
		if input.Status != nil {
			want := models.ParseOrderStatus(*input.Status)
			switch {
			case want == models.StatusPaid && !current.IsPaid():
				settle = true
			case want == models.StatusPending && current.IsPaid():
				return ErrReopenFirst
			}
		}
		if current.IsPaid() && !actor.IsAdmin() {
			return ErrForbidden
		}

		edits := input.Edits()
		if err := ledger.ApplyEdits(&current, edits); err != nil {
			return err
		}
		action := "update"
		if settle {
			if err := ledger.Settle(&current, current.PaymentMethod); err != nil {
				return err
			}
			action = "settle"
		}
		current.UpdatedBy = actor.Phone

		if edits.Items != nil {
			if err := tx.Where("order_id = ?", current.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			current.Items = numbered(current.Items)
			for i := range current.Items {
				current.Items[i].OrderID = current.ID
			}
			if len(current.Items) > 0 {
				if err := tx.Create(&current.Items).Error; err != nil {
					return err
				}
			}
		}
		if err := tx.Omit(clause.Associations).Save(&current).Error; err != nil {
			return err
		}

		saved = current
		return utils.CreateOrderAuditLog(tx, action, current.ID, &before, &current, actor.Phone, actor.IP,
			fmt.Sprintf("Order #%d %sd", current.OrderNumber, action))
	})
	if err != nil {
		return nil, err
	}
	return s.Get(saved.ID)
}

func (s *orderService) Reopen(id uint, actor Actor) (*models.Order, error) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var current models.Order
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		before := current
		if err := ledger.Reopen(&current); err != nil {
			return err
		}
		current.UpdatedBy = actor.Phone
		if err := tx.Omit(clause.Associations).Save(&current).Error; err != nil {
			return err
		}
		return utils.CreateOrderAuditLog(tx, "reopen", current.ID, &before, &current, actor.Phone, actor.IP,
			fmt.Sprintf("Order #%d reopened", current.OrderNumber))
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *orderService) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := withItems(config.DB).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// Last returns the most recently created order, or nil when there is none.
func (s *orderService) Last() (*models.Order, error) {
	var orders []models.Order
	if err := withItems(config.DB).Order("created_at DESC, id DESC").Limit(1).Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

func (s *orderService) List(q dtos.PageQuery) (*dtos.OrderPage, error) {
	return s.page(config.DB.Model(&models.Order{}), q)
}

// DiscountNotes lists orders that carry a discount or a note.
func (s *orderService) DiscountNotes(q dtos.PageQuery) (*dtos.OrderPage, error) {
	db := config.DB.Model(&models.Order{}).
		Where("discount > 0 OR (note IS NOT NULL AND note <> '')")
	return s.page(db, q)
}

func (s *orderService) page(db *gorm.DB, q dtos.PageQuery) (*dtos.OrderPage, error) {
	p := utils.NewPagination(q.Page, q.Limit)

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := withItems(db.Session(&gorm.Session{})).
		Order("created_at DESC, id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return &dtos.OrderPage{Orders: orders, Pagination: utils.BuildMeta(p, total)}, nil
}

// Completed returns paid orders inside the requested day range, the revenue
// split and the ten best sellers among them. Day boundaries follow the
// shop's time zone, so the range is applied after loading.
func (s *orderService) Completed(q dtos.CompletedQuery) (*dtos.CompletedResponse, error) {
	r, err := s.dateRange(q)
	if err != nil {
		return nil, err
	}

	db := config.DB.Where("status = ?", models.StatusPaid)
	if q.PaymentMethod != "" {
		db = db.Where("payment_method = ?", q.PaymentMethod)
	}
	var paid []models.Order
	if err := withItems(db).Order("created_at DESC, id DESC").Find(&paid).Error; err != nil {
		return nil, err
	}

	orders := ledger.FilterRange(paid, r, s.location())
	if orders == nil {
		orders = []models.Order{}
	}
	return &dtos.CompletedResponse{
		Orders:   orders,
		Revenue:  ledger.Summarize(orders),
		TopItems: nonNil(ledger.TopItems(orders, 10)),
	}, nil
}

func (s *orderService) dateRange(q dtos.CompletedQuery) (ledger.DateRange, error) {
	var r ledger.DateRange
	loc := s.location()
	if q.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.StartDate, loc)
		if err != nil {
			return r, fmt.Errorf("%w: startDate %q", ErrInvalidDate, q.StartDate)
		}
		r.From = t
	}
	if q.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.EndDate, loc)
		if err != nil {
			return r, fmt.Errorf("%w: endDate %q", ErrInvalidDate, q.EndDate)
		}
		r.To = t
	}
	return r, nil
}

func (s *orderService) Dashboard() (*dtos.DashboardResponse, error) {
	now := s.now()
	loc := s.location()
	from := ledger.Day(now, loc).AddDate(0, 0, -(ledger.WeekDays - 1))

	// Stored timestamps may carry another zone offset than from, so the SQL
	// bound keeps a day of slack and FilterRange draws the exact line.
	var paid []models.Order
	db := config.DB.Where("status = ? AND created_at >= ?", models.StatusPaid, from.AddDate(0, 0, -1))
	if err := withItems(db).Find(&paid).Error; err != nil {
		return nil, err
	}
	week := ledger.FilterRange(paid, ledger.DateRange{From: from, To: now}, loc)

	return &dtos.DashboardResponse{
		Weekly:   ledger.Weekly(week, now, loc),
		Today:    ledger.TodaySplit(week, now, loc),
		TopItems: nonNil(ledger.TopItems(week, 10)),
	}, nil
}

func numbered(items []models.OrderItem) []models.OrderItem {
	out := make([]models.OrderItem, len(items))
	for i, it := range items {
		it.ID = 0
		it.Position = i
		out[i] = it
	}
	return out
}

func nonNil(items []ledger.ItemCount) []ledger.ItemCount {
	if items == nil {
		return []ledger.ItemCount{}
	}
	return items
}
