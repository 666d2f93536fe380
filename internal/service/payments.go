package service

import (
	"context"
	"log/slog"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
)

// PaymentServiceOptions groups dependencies for PaymentService.
type PaymentServiceOptions struct {
	API    ports.PaymentsAPI
	Logger *slog.Logger
}

// PaymentService lists recorded payments.
type PaymentService struct {
	api    ports.PaymentsAPI
	logger *slog.Logger
}

// NewPaymentService constructs a new PaymentService.
func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	if opts.API == nil {
		panic("PaymentsAPI is required")
	}
	return &PaymentService{api: opts.API, logger: componentLogger(opts.Logger, "payments")}
}

// Fetch implements listing.Fetcher.
func (s *PaymentService) Fetch(
	ctx context.Context,
	q listing.Query[model.PaymentStatus],
) (model.Page[model.Payment], error) {
	resp, err := s.api.ListPayments(ctx, q.Page, q.Filter)
	if err != nil {
		return model.Page[model.Payment]{}, apperrors.FromAPIError(err)
	}
	return resp.Page(), nil
}

// NewList returns an idle payments list seeded with page and status.
func (s *PaymentService) NewList(page int, status model.PaymentStatus) *PaymentList {
	if status == "" {
		status = model.PaymentStatusAll
	}
	return listing.New(listing.Options[model.Payment, model.PaymentStatus]{
		Resource: "payments",
		Fetcher:  s,
		Page:     page,
		Filter:   status,
		Logger:   s.logger,
	})
}
