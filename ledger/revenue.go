package ledger

import (
	"sort"
	"time"

	"nsdrink-pos/models"
)

// WeekDays is the length of the trailing window on the dashboard.
const WeekDays = 7

// DailyBucket is the revenue of paid orders created on one calendar day.
type DailyBucket struct {
	Date     time.Time `json:"date"`
	Day      string    `json:"day"`
	Total    int64     `json:"total"`
	Cash     int64     `json:"cash"`
	Transfer int64     `json:"transfer"`
}

// Split is the headline cash versus everything-else figure.
type Split struct {
	Total   int64 `json:"total"`
	Cash    int64 `json:"cash"`
	NonCash int64 `json:"nonCash"`
}

// Revenue is a period total split into the two accepted payment methods.
// Orders paid with any other method count towards Total only.
type Revenue struct {
	Total    int64 `json:"total"`
	Cash     int64 `json:"cash"`
	Transfer int64 `json:"transfer"`
}

type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DateRange is an inclusive range of calendar days. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls on a day inside the range, with days
// taken in loc.
func (r DateRange) Contains(t time.Time, loc *time.Location) bool {
	d := Day(t, loc)
	if !r.From.IsZero() && d.Before(Day(r.From, loc)) {
		return false
	}
	if !r.To.IsZero() && d.After(Day(r.To, loc)) {
		return false
	}
	return true
}

// Day truncates t to midnight of its calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// PaidOnly keeps the settled orders, preserving input order.
func PaidOnly(orders []models.Order) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if o.IsPaid() {
			out = append(out, o)
		}
	}
	return out
}

// DailyBuckets folds paid orders into the trailing n days ending today,
// oldest first.
func DailyBuckets(orders []models.Order, now time.Time, days int, loc *time.Location) []DailyBucket {
	if days < 1 {
		return nil
	}
	today := Day(now, loc)
	buckets := make([]DailyBucket, days)
	index := make(map[time.Time]int, days)
	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, i-(days-1))
		buckets[i] = DailyBucket{Date: d, Day: d.Format("01-02")}
		index[d] = i
	}
	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		i, ok := index[Day(o.CreatedAt, loc)]
		if !ok {
			continue
		}
		buckets[i].Total += o.TotalAmount
		switch o.PaymentMethod {
		case models.PaymentCash:
			buckets[i].Cash += o.TotalAmount
		case models.PaymentTransfer:
			buckets[i].Transfer += o.TotalAmount
		}
	}
	return buckets
}

// Weekly is DailyBuckets over the dashboard window.
func Weekly(orders []models.Order, now time.Time, loc *time.Location) []DailyBucket {
	return DailyBuckets(orders, now, WeekDays, loc)
}

// TodaySplit totals today's paid orders, putting anything that is not
// literally cash into NonCash.
func TodaySplit(orders []models.Order, now time.Time, loc *time.Location) Split {
	today := Day(now, loc)
	var s Split
	for _, o := range orders {
		if !o.IsPaid() || !Day(o.CreatedAt, loc).Equal(today) {
			continue
		}
		s.Total += o.TotalAmount
		if o.PaymentMethod == models.PaymentCash {
			s.Cash += o.TotalAmount
		} else {
			s.NonCash += o.TotalAmount
		}
	}
	return s
}

// FilterRange keeps paid orders created inside r, preserving input order.
func FilterRange(orders []models.Order, r DateRange, loc *time.Location) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if o.IsPaid() && r.Contains(o.CreatedAt, loc) {
			out = append(out, o)
		}
	}
	return out
}

// Summarize totals paid orders by payment method.
func Summarize(orders []models.Order) Revenue {
	var r Revenue
	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		r.Total += o.TotalAmount
		switch o.PaymentMethod {
		case models.PaymentCash:
			r.Cash += o.TotalAmount
		case models.PaymentTransfer:
			r.Transfer += o.TotalAmount
		}
	}
	return r
}

// InRange is Summarize over FilterRange.
func InRange(orders []models.Order, r DateRange, loc *time.Location) Revenue {
	return Summarize(FilterRange(orders, r, loc))
}

// TopItems sums quantity per item name over paid orders and returns the n
// best sellers. Ties keep first-seen order.
func TopItems(orders []models.Order, n int) []ItemCount {
	var counts []ItemCount
	index := map[string]int{}
	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		for _, it := range o.Items {
			i, ok := index[it.Name]
			if !ok {
				i = len(counts)
				index[it.Name] = i
				counts = append(counts, ItemCount{Name: it.Name})
			}
			counts[i].Quantity += it.Quantity
		}
	}
	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Quantity > counts[b].Quantity
	})
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
