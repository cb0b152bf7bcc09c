package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pension/config"
	kafkaMocks "pension/infras/kafka/mocks"
	"pension/infras/otel/mocks"
	invoiceMocks "pension/internal/domains/invoice/mocks"
	reservationMocks "pension/internal/domains/reservation/mocks"
	"pension/internal/domains/reservation/model"
	"pension/internal/domains/reservation/model/dto"
	"pension/internal/domains/reservation/service"
	roomMocks "pension/internal/domains/room/mocks"
	roomModel "pension/internal/domains/room/model"
	cacheMocks "pension/shared/cache/mocks"
	"pension/shared/constant"
	"pension/shared/failure"
	gModel "pension/shared/model"
	"pension/shared/timezone"
)

func newReservationService(ctrl *gomock.Controller) (
	service.Reservation,
	*reservationMocks.MockReservation,
	*roomMocks.MockRoom,
	*invoiceMocks.MockInvoice,
) {
	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockInvoiceRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and event publishing happen on background goroutines, so
	// no test asserts on their call counts.
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockInvoiceRepo, cfg, mockCache, mockOtel, mockKafka)

	return svc, mockRepo, mockRoomRepo, mockInvoiceRepo
}

func lockedRooms(ids ...string) []roomModel.Room {
	rooms := make([]roomModel.Room, 0, len(ids))
	for i, id := range ids {
		rooms = append(rooms, roomModel.Room{
			ID:                 id,
			Number:             "10" + string(rune('1'+i)),
			Status:             roomModel.StatusFree,
			PricePerNightCents: 8500,
		})
	}

	return rooms
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, _ := newReservationService(ctrl)

	roomIDs := []string{
		"5f4ff6e8-8f4a-4d4a-9d26-1b5b6f9d0a01",
		"5f4ff6e8-8f4a-4d4a-9d26-1b5b6f9d0a02",
	}

	passTx := func(ctx context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateReservationRequest{
				ClientID: "c0a80101-0000-4000-8000-000000000001",
				RoomIDs:  roomIDs,
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-04",
			},
			setupMock: func() {
				mockRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passTx)
				mockRoomRepo.EXPECT().
					LockByIDs(gomock.Any(), gomock.Any(), roomIDs).
					Return(lockedRooms(roomIDs...), nil)
				mockRepo.EXPECT().
					ActiveStaysForRooms(gomock.Any(), gomock.Any(), roomIDs).
					Return(nil, nil)
				mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().
					AssignRoomsTx(gomock.Any(), gomock.Any(), gomock.Any(), roomIDs, "test-user-id").
					Return(nil)
				mockRoomRepo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Any(), roomIDs, roomModel.StatusOccupied, "test-user-id").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateReservationRequest{
				ClientID: "c0a80101-0000-4000-8000-000000000001",
				RoomIDs:  roomIDs,
				CheckIn:  "2026-09-04",
				CheckOut: "2026-09-04",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room",
			req: dto.CreateReservationRequest{
				ClientID: "c0a80101-0000-4000-8000-000000000001",
				RoomIDs:  roomIDs,
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-04",
			},
			setupMock: func() {
				mockRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passTx)
				mockRoomRepo.EXPECT().
					LockByIDs(gomock.Any(), gomock.Any(), roomIDs).
					Return(lockedRooms(roomIDs[0]), nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "overlapping stay",
			req: dto.CreateReservationRequest{
				ClientID: "c0a80101-0000-4000-8000-000000000001",
				RoomIDs:  roomIDs,
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-04",
			},
			setupMock: func() {
				mockRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passTx)
				mockRoomRepo.EXPECT().
					LockByIDs(gomock.Any(), gomock.Any(), roomIDs).
					Return(lockedRooms(roomIDs...), nil)
				mockRepo.EXPECT().
					ActiveStaysForRooms(gomock.Any(), gomock.Any(), roomIDs).
					Return([]model.ActiveStay{
						{
							ReservationID: "existing-reservation",
							RoomID:        roomIDs[1],
							CheckIn:       time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
							CheckOut:      time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
						},
					}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "back-to-back stay is not a conflict",
			req: dto.CreateReservationRequest{
				ClientID: "c0a80101-0000-4000-8000-000000000001",
				RoomIDs:  roomIDs,
				CheckIn:  "2026-09-04",
				CheckOut: "2026-09-06",
			},
			setupMock: func() {
				mockRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passTx)
				mockRoomRepo.EXPECT().
					LockByIDs(gomock.Any(), gomock.Any(), roomIDs).
					Return(lockedRooms(roomIDs...), nil)
				mockRepo.EXPECT().
					ActiveStaysForRooms(gomock.Any(), gomock.Any(), roomIDs).
					Return([]model.ActiveStay{
						{
							ReservationID: "existing-reservation",
							RoomID:        roomIDs[0],
							CheckIn:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
							CheckOut:      time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
						},
					}, nil)
				mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().
					AssignRoomsTx(gomock.Any(), gomock.Any(), gomock.Any(), roomIDs, "test-user-id").
					Return(nil)
				mockRoomRepo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Any(), roomIDs, roomModel.StatusOccupied, "test-user-id").
					Return(nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.RoomIDs, res.RoomIDs)
				assert.Equal(t, model.StatusActive, res.Status)
			}
		})
	}
}

func TestReservationService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newReservationService(ctrl)

	activeReservation := model.Reservation{
		ID:       "f1d2c3b4-0000-4000-8000-000000000001",
		ClientID: "c0a80101-0000-4000-8000-000000000001",
		CheckIn:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Status:   model.StatusActive,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation keeps rooms occupied",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeReservation, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})
				// No room repo expectations on purpose: cancelling must not
				// touch room status, housekeeping frees them later.
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repeat cancel is a no-op",
			setupMock: func() {
				cancelled := activeReservation
				cancelled.Status = model.StatusCancelled
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
				// No Update expectation: nothing is written on a repeat cancel.
			},
			wantErr: false,
		},
		{
			name: "already finalized",
			setupMock: func() {
				finalized := activeReservation
				finalized.Status = model.StatusFinalized
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(finalized, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, activeReservation.ID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, mockInvoiceRepo := newReservationService(ctrl)

	roomIDs := []string{"5f4ff6e8-8f4a-4d4a-9d26-1b5b6f9d0a01"}

	activeReservation := model.Reservation{
		ID:       "f1d2c3b4-0000-4000-8000-000000000002",
		ClientID: "c0a80101-0000-4000-8000-000000000001",
		CheckIn:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Status:   model.StatusActive,
		Metadata: gModel.Metadata{CreatedAt: timezone.Now()},
	}

	passTx := func(ctx context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful checkout bills the stay and frees the rooms",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeReservation, nil)
				mockRepo.EXPECT().
					RoomIDsOf(gomock.Any(), activeReservation.ID).
					Return(roomIDs, nil)
				mockRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passTx)
				mockRoomRepo.EXPECT().
					LockByIDs(gomock.Any(), gomock.Any(), roomIDs).
					Return(lockedRooms(roomIDs...), nil)
				mockInvoiceRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusFinalized, fields[model.FieldStatus])

						return nil
					})
				mockRoomRepo.EXPECT().
					UpdateStatusTx(gomock.Any(), gomock.Any(), roomIDs, roomModel.StatusFree, "test-user-id").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "already finalized",
			setupMock: func() {
				finalized := activeReservation
				finalized.Status = model.StatusFinalized
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(finalized, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "concurrent checkout loses on the invoice unique constraint",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeReservation, nil)
				mockRepo.EXPECT().
					RoomIDsOf(gomock.Any(), activeReservation.ID).
					Return(roomIDs, nil)
				mockRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passTx)
				mockRoomRepo.EXPECT().
					LockByIDs(gomock.Any(), gomock.Any(), roomIDs).
					Return(lockedRooms(roomIDs...), nil)
				mockInvoiceRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "reservation not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CheckOut(ctx, activeReservation.ID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, activeReservation.ID, res.ReservationID)
				assert.Equal(t, 3, res.Nights)
				assert.Equal(t, int64(3*8500), res.TotalCents)
				assert.False(t, res.Paid)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newReservationService(ctrl)

	reservation := model.Reservation{
		ID:       "f1d2c3b4-0000-4000-8000-000000000003",
		ClientID: "c0a80101-0000-4000-8000-000000000001",
		CheckIn:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Status:   model.StatusActive,
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
					Return(reservation, nil)
				mockRepo.EXPECT().
					RoomIDsOf(gomock.Any(), reservation.ID).
					Return([]string{"room-1"}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "transient read error is retried once",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errors.New("connection reset"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
				mockRepo.EXPECT().
					RoomIDsOf(gomock.Any(), reservation.ID).
					Return([]string{"room-1"}, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Get(ctx, reservation.ID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, reservation.ID, res.ID)
			}
		})
	}
}
