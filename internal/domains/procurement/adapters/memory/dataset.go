package memory

import (
	"time"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
)

type dataset struct {
	orders         map[int64]*domain.Order
	receivedOrders map[int64]*domain.ReceivedOrder
	items          map[int64]*domain.InventoryItem

	nextOrderID    int64
	nextReceivedID int64
	nextItemID     int64
}

func newDataset() *dataset {
	return &dataset{
		orders:         map[int64]*domain.Order{},
		receivedOrders: map[int64]*domain.ReceivedOrder{},
		items:          map[int64]*domain.InventoryItem{},
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for id, o := range d.orders {
		c.orders[id] = cloneOrder(o)
	}
	for id, r := range d.receivedOrders {
		c.receivedOrders[id] = cloneReceived(r)
	}
	for id, i := range d.items {
		c.items[id] = cloneItem(i)
	}
	c.nextOrderID = d.nextOrderID
	c.nextReceivedID = d.nextReceivedID
	c.nextItemID = d.nextItemID
	return c
}

func cloneOrder(o *domain.Order) *domain.Order {
	c := *o
	c.InventoryItemID = cloneID(o.InventoryItemID)
	return &c
}

func cloneReceived(r *domain.ReceivedOrder) *domain.ReceivedOrder {
	c := *r
	c.InventoryItemID = cloneID(r.InventoryItemID)
	if r.DateReceived != nil {
		at := *r.DateReceived
		c.DateReceived = &at
	}
	return &c
}

func cloneItem(i *domain.InventoryItem) *domain.InventoryItem {
	c := *i
	return &c
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func now() time.Time {
	return time.Now().UTC()
}
