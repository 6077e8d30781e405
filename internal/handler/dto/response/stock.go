package response

import (
	"stock-ledger/internal/usecase/commands"
	"stock-ledger/internal/usecase/queries"
)

type StockResponse struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	OnHand     int    `json:"on_hand"`
	Reserved   int    `json:"reserved"`
	Available  int    `json:"available"`
	UpdatedAt  int64  `json:"updated_at"`
}

func FromStockView(v *queries.StockView) *StockResponse {
	var r StockResponse
	copyInto(&r, v)
	return &r
}

type AdjustmentResponse struct {
	ID            int64   `json:"id"`
	ProductID     string  `json:"product_id"`
	LocationID    string  `json:"location_id"`
	Delta         int     `json:"delta"`
	ReservedDelta int     `json:"reserved_delta"`
	Reason        string  `json:"reason"`
	Actor         string  `json:"actor"`
	ReservationID *string `json:"reservation_id,omitempty"`
	OccurredAt    int64   `json:"occurred_at"`
}

type AdjustmentListResponse struct {
	Adjustments []AdjustmentResponse `json:"adjustments"`
}

func FromAdjustmentViews(views []*queries.AdjustmentView) AdjustmentListResponse {
	out := AdjustmentListResponse{Adjustments: make([]AdjustmentResponse, 0, len(views))}
	for _, v := range views {
		var r AdjustmentResponse
		copyInto(&r, v)
		out.Adjustments = append(out.Adjustments, r)
	}
	return out
}

type BulkAdjustItemResponse struct {
	Index      int            `json:"index"`
	ProductID  string         `json:"product_id"`
	LocationID string         `json:"location_id"`
	OK         bool           `json:"ok"`
	Stock      *StockResponse `json:"stock,omitempty"`
	ErrorCode  string         `json:"error_code,omitempty"`
	Error      string         `json:"error,omitempty"`
}

type BulkAdjustResponse struct {
	Results   []BulkAdjustItemResponse `json:"results"`
	Succeeded int                      `json:"succeeded"`
	Failed    int                      `json:"failed"`
}

func FromBulkAdjustResults(results []commands.BulkAdjustResult) BulkAdjustResponse {
	out := BulkAdjustResponse{Results: make([]BulkAdjustItemResponse, 0, len(results))}
	for _, res := range results {
		item := BulkAdjustItemResponse{
			Index:      res.Index,
			ProductID:  res.ProductID,
			LocationID: res.LocationID,
			OK:         res.OK,
			ErrorCode:  res.ErrorCode,
			Error:      res.Error,
		}
		if res.Stock != nil {
			item.Stock = FromStockView(res.Stock)
		}
		if res.OK {
			out.Succeeded++
		} else {
			out.Failed++
		}
		out.Results = append(out.Results, item)
	}
	return out
}
