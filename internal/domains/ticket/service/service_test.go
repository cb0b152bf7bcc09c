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
	roomMocks "pension/internal/domains/room/mocks"
	ticketMocks "pension/internal/domains/ticket/mocks"
	"pension/internal/domains/ticket/model/dto"
	"pension/internal/domains/ticket/service"
	userMocks "pension/internal/domains/user/mocks"
	"pension/shared/constant"
	"pension/shared/failure"
)

func TestTicketService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ticketMocks.NewMockTicket(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, mockRoomRepo, cfg, mockOtel)

	roomID := "5f4ff6e8-8f4a-4d4a-9d26-1b5b6f9d0a01"

	tests := []struct {
		name      string
		req       dto.CreateTicketRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "ticket without a room",
			req: dto.CreateTicketRequest{
				ReporterID:  "c0a80101-0000-4000-8000-000000000001",
				Title:       "Boiler pressure low",
				Description: "Pressure gauge reads under 1 bar.",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "ticket bound to a room",
			req: dto.CreateTicketRequest{
				RoomID:      &roomID,
				ReporterID:  "c0a80101-0000-4000-8000-000000000001",
				Title:       "Leaking shower",
				Description: "Water pooling on the bathroom floor.",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown reporter",
			req: dto.CreateTicketRequest{
				ReporterID:  "c0a80101-0000-4000-8000-000000000099",
				Title:       "Boiler pressure low",
				Description: "Pressure gauge reads under 1 bar.",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			req: dto.CreateTicketRequest{
				RoomID:      &roomID,
				ReporterID:  "c0a80101-0000-4000-8000-000000000001",
				Title:       "Leaking shower",
				Description: "Water pooling on the bathroom floor.",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateTicketRequest{
				ReporterID:  "c0a80101-0000-4000-8000-000000000001",
				Title:       "Boiler pressure low",
				Description: "Pressure gauge reads under 1 bar.",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
