package request

import (
	"stock-ledger/internal/usecase/commands"
)

type InitializeStockRequest struct {
	ProductID  string `json:"product_id" binding:"required,max=128"`
	LocationID string `json:"location_id" binding:"omitempty,max=128"`
	OnHand     int    `json:"on_hand" binding:"gte=0"`
}

func (r InitializeStockRequest) ToInput() commands.InitializeInput {
	return commands.InitializeInput{
		ProductID:  r.ProductID,
		LocationID: r.LocationID,
		OnHand:     r.OnHand,
	}
}

// AdjustStockRequest: product comes from the path
type AdjustStockRequest struct {
	LocationID string `json:"location_id" binding:"omitempty,max=128"`
	Delta      int    `json:"delta" binding:"required"`
	Reason     string `json:"reason" binding:"required,oneof=restock correction sale return"`
}

func (r AdjustStockRequest) ToInput(productID string) commands.AdjustInput {
	return commands.AdjustInput{
		ProductID:  productID,
		LocationID: r.LocationID,
		Delta:      r.Delta,
		Reason:     r.Reason,
	}
}

type BulkAdjustItemRequest struct {
	ProductID  string `json:"product_id" binding:"required,max=128"`
	LocationID string `json:"location_id" binding:"omitempty,max=128"`
	OnHand     *int   `json:"on_hand" binding:"omitempty,gte=0"`
	Reserved   *int   `json:"reserved" binding:"omitempty,gte=0"`
}

type BulkAdjustRequest struct {
	Items []BulkAdjustItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r BulkAdjustRequest) ToItems() []commands.OverrideItem {
	items := make([]commands.OverrideItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.OverrideItem{
			ProductID:  it.ProductID,
			LocationID: it.LocationID,
			OnHand:     it.OnHand,
			Reserved:   it.Reserved,
		})
	}
	return items
}
