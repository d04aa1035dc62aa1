package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"frontdesk/internal/domains/bill/model"
	"frontdesk/internal/domains/bill/model/dto"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/pricing"
	foodModel "frontdesk/internal/domains/food/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/gst"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

const invoiceTimestampFormat = "20060102150405"

// Generate settles a booking into a single invoice: the room charge plus any
// served or ready food orders correlated to the guest by name or room number
// that have not been invoiced yet. The selection, the bill and item inserts,
// and the invoice stamping on the food orders run in one serializable
// transaction so a partial failure leaves nothing behind.
func (s *serviceImpl) Generate(ctx context.Context, bookingID string, req dto.GenerateBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for billing")

		return res, fmt.Errorf("failed to get booking for billing: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	roomBase, roomRate, roomGst, roomTotal, err := s.roomCharge(ctx, booking)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	metadata := gModel.Metadata{
		CreatedAt:  now,
		CreatedBy:  user,
		ModifiedAt: now,
		ModifiedBy: user,
	}

	bill := model.Bill{
		ID:            uuid.NewString(),
		InvoiceNumber: s.newInvoiceNumber(),
		BookingID:     booking.ID,
		GuestName:     booking.GuestName,
		PhoneNumber:   booking.PhoneNumber,
		RoomNumber:    booking.RoomNumber,
		Discount:      req.Discount,
		PaymentStatus: model.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Metadata:      metadata,
	}
	if req.PaymentStatus != constant.Empty {
		bill.PaymentStatus = req.PaymentStatus
	}

	items := []model.BillItem{{
		ID:          uuid.NewString(),
		BillID:      bill.ID,
		ItemType:    model.ItemTypeRoom,
		Description: fmt.Sprintf("Room %s (%d nights)", booking.RoomNumber, pricing.Nights(booking.CheckIn, booking.CheckOut)),
		Quantity:    pricing.Nights(booking.CheckIn, booking.CheckOut),
		UnitPrice:   roomBase / float64(pricing.Nights(booking.CheckIn, booking.CheckOut)),
		BaseAmount:  roomBase,
		GstRate:     roomRate,
		GstAmount:   roomGst,
		TotalAmount: roomTotal,
		SourceID:    booking.ID,
		Metadata:    metadata,
	}}

	err = s.tx.WithSerializableTransaction(ctx, func(tx *sqlx.Tx) error {
		orders, err := s.orderRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, uninvoicedOrdersFilter(booking))
		if err != nil {
			log.Error().Err(err).Msg("failed to select food orders for billing")

			return fmt.Errorf("failed to select food orders for billing: %w", err)
		}

		subtotal := roomBase
		totalGst := roomGst

		orderIDs := make([]string, 0, len(orders))

		for _, order := range orders {
			base := order.BaseAmount
			if base == 0 {
				base = order.TotalAmount
			}

			rate := order.GstRate
			if rate == 0 {
				rate = gst.RateFor(base)
			}

			gstAmount := order.GstAmount
			if gstAmount == 0 {
				gstAmount = gst.Round2(base * rate)
			}

			items = append(items, model.BillItem{
				ID:          uuid.NewString(),
				BillID:      bill.ID,
				ItemType:    model.ItemTypeFood,
				Description: fmt.Sprintf("%s x%d", order.ItemName, order.Quantity),
				Quantity:    order.Quantity,
				UnitPrice:   base / float64(order.Quantity),
				BaseAmount:  base,
				GstRate:     rate,
				GstAmount:   gstAmount,
				TotalAmount: gst.Round2(base + gstAmount),
				SourceID:    order.ID,
				Metadata:    metadata,
			})

			subtotal += base
			totalGst += gstAmount
			orderIDs = append(orderIDs, order.ID)
		}

		bill.Subtotal = gst.Round2(subtotal)
		bill.GstAmount = gst.Round2(totalGst)
		bill.TotalAmount = gst.Round2(subtotal + totalGst - req.Discount)

		if subtotal > 0 {
			bill.GstRate = gst.Round2(totalGst / subtotal * 100)
		}

		if err := s.repo.InsertTx(ctx, tx, bill); err != nil {
			log.Error().Err(err).Msg("failed to insert bill")

			return fmt.Errorf("failed to insert bill: %w", err)
		}

		if err := s.itemRepo.InsertBulkTx(ctx, tx, items); err != nil {
			log.Error().Err(err).Msg("failed to insert bill items")

			return fmt.Errorf("failed to insert bill items: %w", err)
		}

		if len(orderIDs) > 0 {
			stampFields := map[string]any{
				foodModel.FieldInvoiceNumber: bill.InvoiceNumber,
				constant.FieldModifiedAt:     now,
				constant.FieldModifiedBy:     user,
			}

			stampFilter := gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{
						Field:    foodModel.FieldID,
						Value:    orderIDs,
						Operator: gDto.FilterOperatorIn,
						Table:    foodModel.OrderTableName,
					},
				},
			}

			if err := s.orderRepo.UpdateTx(ctx, tx, stampFields, stampFilter); err != nil {
				log.Error().Err(err).Msg("failed to stamp invoice number on food orders")

				return fmt.Errorf("failed to stamp invoice number on food orders: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.audit.Record(ctx, "generate", model.EntityName, bill.ID, bill)

	s.invalidate(ctx, bill.ID)

	res.FromModel(bill, items)

	return res, nil
}

// roomCharge reuses the amounts stored on the booking; a booking persisted
// without them is priced again from the current room rate.
func (s *serviceImpl) roomCharge(ctx context.Context, booking bookingModel.Booking) (base, rate, gstAmount, total float64, err error) {
	if booking.TotalAmount > 0 {
		return booking.BaseAmount, booking.GstRate, booking.GstAmount, booking.TotalAmount, nil
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for billing")

		return 0, 0, 0, 0, fmt.Errorf("failed to get room for billing: %w", err)
	}

	if room.ID == constant.Empty {
		return 0, 0, 0, 0, failure.NotFound("room not found")
	}

	quote := pricing.Calculate(room.Rate, booking.CheckIn, booking.CheckOut, nil)

	return quote.BaseAmount, quote.GstRate, quote.GstAmount, quote.TotalAmount, nil
}

// uninvoicedOrdersFilter correlates food orders to the guest by fuzzy name
// match or exact room number. There is no foreign key from a food order to a
// booking, so this is best effort by design of the data model.
func uninvoicedOrdersFilter(booking bookingModel.Booking) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    foodModel.FieldCustomerName,
						Value:    booking.GuestName,
						Operator: gDto.FilterOperatorLike,
						Table:    foodModel.OrderTableName,
					},
					gDto.Filter{
						Field:    foodModel.FieldRoomNumber,
						Value:    booking.RoomNumber,
						Operator: gDto.FilterOperatorEq,
						Table:    foodModel.OrderTableName,
					},
				},
			},
			gDto.Filter{
				Field:    foodModel.FieldStatus,
				Value:    []string{foodModel.OrderStatusServed, foodModel.OrderStatusReady},
				Operator: gDto.FilterOperatorIn,
				Table:    foodModel.OrderTableName,
			},
			gDto.Filter{
				Field:    foodModel.FieldInvoiceNumber,
				Operator: gDto.FilterIsNull,
				Table:    foodModel.OrderTableName,
			},
		},
	}
}

func (s *serviceImpl) newInvoiceNumber() string {
	return fmt.Sprintf("%s-%s-%04d", s.cfg.App.InvoicePrefix, timezone.Now().Format(invoiceTimestampFormat), rand.IntN(10000))
}
