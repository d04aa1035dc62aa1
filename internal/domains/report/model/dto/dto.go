package dto

import (
	billRepository "frontdesk/internal/domains/bill/repository"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/gst"
	"frontdesk/shared/timezone"
	"time"
)

type OccupancyResponse struct {
	TotalRooms    int     `json:"total_rooms"`
	Available     int     `json:"available"`
	Occupied      int     `json:"occupied"`
	Maintenance   int     `json:"maintenance"`
	Cleaning      int     `json:"cleaning"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

func (r *OccupancyResponse) FromCounts(counts map[string]int) {
	r.Available = counts[roomModel.StatusAvailable]
	r.Occupied = counts[roomModel.StatusOccupied]
	r.Maintenance = counts[roomModel.StatusMaintenance]
	r.Cleaning = counts[roomModel.StatusCleaning]
	r.TotalRooms = r.Available + r.Occupied + r.Maintenance + r.Cleaning

	if r.TotalRooms > 0 {
		r.OccupancyRate = gst.Round2(float64(r.Occupied) / float64(r.TotalRooms) * 100)
	}
}

type RevenueResponse struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	BillCount   int     `json:"bill_count"`
	TotalAmount float64 `json:"total_amount"`
	GstAmount   float64 `json:"gst_amount"`
}

func (r *RevenueResponse) FromModel(revenue billRepository.Revenue, from, to time.Time) {
	r.From = timezone.Format(from, constant.DateOnlyFormat)
	r.To = timezone.Format(to, constant.DateOnlyFormat)
	r.BillCount = revenue.BillCount
	r.TotalAmount = revenue.TotalAmount
	r.GstAmount = revenue.GstAmount
}
