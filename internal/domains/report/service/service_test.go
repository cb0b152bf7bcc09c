package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pension/config"
	"pension/infras/otel/mocks"
	reportMocks "pension/internal/domains/report/mocks"
	"pension/internal/domains/report/model/dto"
	"pension/internal/domains/report/service"
	cacheMocks "pension/shared/cache/mocks"
	"pension/shared/constant"
)

func TestReportService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	roomCounts := []dto.RoomStatusCount{
		{Status: "free", Count: 7},
		{Status: "occupied", Count: 4},
		{Status: "cleaning", Count: 1},
	}

	revenue := dto.RevenueSummary{
		InvoiceCount:      3,
		TotalCents:        184500,
		PaidCents:         123000,
		OutstandingCents:  61500,
		TotalNightsBilled: 9,
	}

	totals := dto.ReservationTotals{
		TotalReservations: 42,
		FinalizedCount:    30,
		CancelledCount:    6,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "full daily snapshot",
			setupMock: func() {
				mockRepo.EXPECT().RoomStatusCounts(gomock.Any()).Return(roomCounts, nil)
				mockRepo.EXPECT().ActiveReservationCount(gomock.Any()).Return(5, nil)
				mockRepo.EXPECT().ArrivalCountOn(gomock.Any(), date).Return(2, nil)
				mockRepo.EXPECT().DepartureCountOn(gomock.Any(), date).Return(3, nil)
				mockRepo.EXPECT().RevenueOn(gomock.Any(), date).Return(revenue, nil)
				mockRepo.EXPECT().ReservationTotals(gomock.Any()).Return(totals, nil)
				mockRepo.EXPECT().TotalRevenueCents(gomock.Any()).Return(int64(987600), nil)
				mockRepo.EXPECT().OpenTicketCount(gomock.Any()).Return(1, nil)
			},
			wantErr: false,
		},
		{
			name: "room counts retried once before giving up",
			setupMock: func() {
				mockRepo.EXPECT().
					RoomStatusCounts(gomock.Any()).
					Return(nil, errors.New("connection reset")).
					Times(2)
			},
			wantErr: true,
		},
		{
			name: "revenue aggregation failure",
			setupMock: func() {
				mockRepo.EXPECT().RoomStatusCounts(gomock.Any()).Return(roomCounts, nil)
				mockRepo.EXPECT().ActiveReservationCount(gomock.Any()).Return(5, nil)
				mockRepo.EXPECT().ArrivalCountOn(gomock.Any(), date).Return(2, nil)
				mockRepo.EXPECT().DepartureCountOn(gomock.Any(), date).Return(3, nil)
				mockRepo.EXPECT().
					RevenueOn(gomock.Any(), date).
					Return(dto.RevenueSummary{}, errors.New("database error")).
					Times(2)
			},
			wantErr: true,
		},
		{
			name: "reservation totals failure",
			setupMock: func() {
				mockRepo.EXPECT().RoomStatusCounts(gomock.Any()).Return(roomCounts, nil)
				mockRepo.EXPECT().ActiveReservationCount(gomock.Any()).Return(5, nil)
				mockRepo.EXPECT().ArrivalCountOn(gomock.Any(), date).Return(2, nil)
				mockRepo.EXPECT().DepartureCountOn(gomock.Any(), date).Return(3, nil)
				mockRepo.EXPECT().RevenueOn(gomock.Any(), date).Return(revenue, nil)
				mockRepo.EXPECT().
					ReservationTotals(gomock.Any()).
					Return(dto.ReservationTotals{}, errors.New("database error")).
					Times(2)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Summarize(ctx, date)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "2026-08-28", res.Date)
				assert.Equal(t, roomCounts, res.Occupancy.RoomsByStatus)
				assert.Equal(t, 5, res.Occupancy.ActiveReservations)
				assert.Equal(t, 2, res.Occupancy.ArrivalsToday)
				assert.Equal(t, 3, res.Occupancy.DeparturesToday)
				assert.Equal(t, revenue, res.Revenue)
				assert.Equal(t, int64(987600), res.TotalRevenueCents)
				assert.Equal(t, 42, res.TotalReservations)
				assert.Equal(t, 30, res.FinalizedCount)
				assert.Equal(t, 6, res.CancelledCount)
				assert.Equal(t, 1, res.OpenTickets)
				assert.NotEmpty(t, res.GeneratedAt)
			}
		})
	}
}
