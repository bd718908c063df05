package utils

import (
	"nsdrink-pos/ledger"
	"nsdrink-pos/models"

	"gorm.io/gorm"
)

// CreateOrderAuditLog stores a before/after snapshot of an order mutation.
func CreateOrderAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldOrder, newOrder *models.Order,
	actor string,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "order",
		EntityID:    entityID,
		Action:      action,
		Actor:       actor,
		OldValue:    toJSONString(orderOrNil(oldOrder)),
		NewValue:    toJSONString(orderOrNil(newOrder)),
		Changes:     calculateOrderChanges(oldOrder, newOrder),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

// orderOrNil keeps a typed nil pointer from marshalling as "null".
func orderOrNil(o *models.Order) interface{} {
	if o == nil {
		return nil
	}
	return o
}

func calculateOrderChanges(oldOrder, newOrder *models.Order) *string {
	if oldOrder == nil || newOrder == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldOrder.Status != newOrder.Status {
		changes["status"] = map[string]string{
			"old": string(oldOrder.Status),
			"new": string(newOrder.Status),
		}
	}

	if oldOrder.PaymentMethod != newOrder.PaymentMethod {
		changes["paymentMethod"] = map[string]string{
			"old": string(oldOrder.PaymentMethod),
			"new": string(newOrder.PaymentMethod),
		}
	}

	if oldOrder.TotalAmount != newOrder.TotalAmount {
		changes["totalAmount"] = map[string]int64{
			"old": oldOrder.TotalAmount,
			"new": newOrder.TotalAmount,
		}
	}

	if oldOrder.Discount != newOrder.Discount {
		changes["discount"] = map[string]int{
			"old": oldOrder.Discount,
			"new": newOrder.Discount,
		}
	}

	if oldOrder.TableNumber != newOrder.TableNumber {
		changes["tableNumber"] = map[string]int{
			"old": oldOrder.TableNumber,
			"new": newOrder.TableNumber,
		}
	}

	if getStringValue(oldOrder.Note) != getStringValue(newOrder.Note) {
		changes["note"] = map[string]string{
			"old": getStringValue(oldOrder.Note),
			"new": getStringValue(newOrder.Note),
		}
	}

	if !sameItems(oldOrder.Items, newOrder.Items) {
		changes["subtotal"] = map[string]int64{
			"old": ledger.Subtotal(oldOrder.Items),
			"new": ledger.Subtotal(newOrder.Items),
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}

func sameItems(a, b []models.OrderItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Price != b[i].Price || a[i].Quantity != b[i].Quantity || a[i].Note != b[i].Note {
			return false
		}
	}
	return true
}
