package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pension/config"
	"pension/infras/otel/mocks"
	invoiceMocks "pension/internal/domains/invoice/mocks"
	"pension/internal/domains/invoice/model"
	"pension/internal/domains/invoice/service"
	cacheMocks "pension/shared/cache/mocks"
	"pension/shared/constant"
	"pension/shared/failure"
)

func newInvoiceService(ctrl *gomock.Controller) (service.Invoice, *invoiceMocks.MockInvoice) {
	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo
}

func TestInvoiceService_GetByReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newInvoiceService(ctrl)

	invoice := model.Invoice{
		ID:            "invoice-1",
		ReservationID: "reservation-1",
		Number:        "F-9F3A21BC-20260828",
		Nights:        3,
		TotalCents:    61500,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(invoice, nil)
			},
			wantErr: false,
		},
		{
			name: "no invoice yet",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "transient read error is retried once",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, errors.New("connection reset"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(invoice, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.GetByReservation(ctx, "reservation-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, invoice.Number, res.Number)
				assert.Equal(t, invoice.TotalCents, res.TotalCents)
			}
		})
	}
}

func TestInvoiceService_MarkPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newInvoiceService(ctrl)

	invoice := model.Invoice{
		ID:            "invoice-1",
		ReservationID: "reservation-1",
		Paid:          false,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful payment",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(invoice, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, true, fields[model.FieldPaid])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "already paid",
			setupMock: func() {
				paid := invoice
				paid.Paid = true
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.MarkPaid(ctx, invoice.ID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
