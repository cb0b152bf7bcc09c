package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"pension/internal/domains/reservation/model"
	"pension/internal/domains/reservation/model/dto"
	"pension/shared/failure"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateReservationRequest
		wantErr bool
	}{
		{
			name: "valid stay",
			req: dto.CreateReservationRequest{
				ClientID: "client-1",
				RoomIDs:  []string{"room-1"},
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-04",
			},
			wantErr: false,
		},
		{
			name: "malformed check-in",
			req: dto.CreateReservationRequest{
				ClientID: "client-1",
				RoomIDs:  []string{"room-1"},
				CheckIn:  "01/09/2026",
				CheckOut: "2026-09-04",
			},
			wantErr: true,
		},
		{
			name: "malformed check-out",
			req: dto.CreateReservationRequest{
				ClientID: "client-1",
				RoomIDs:  []string{"room-1"},
				CheckIn:  "2026-09-01",
				CheckOut: "next tuesday",
			},
			wantErr: true,
		},
		{
			name: "check-out before check-in",
			req: dto.CreateReservationRequest{
				ClientID: "client-1",
				RoomIDs:  []string{"room-1"},
				CheckIn:  "2026-09-04",
				CheckOut: "2026-09-01",
			},
			wantErr: true,
		},
		{
			name: "zero-night stay",
			req: dto.CreateReservationRequest{
				ClientID: "client-1",
				RoomIDs:  []string{"room-1"},
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-01",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation, err := tt.req.ToModel("test-user")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, reservation.ID)
				assert.Equal(t, model.StatusActive, reservation.Status)
				assert.Equal(t, "test-user", reservation.CreatedBy)
				assert.True(t, reservation.CheckIn.Before(reservation.CheckOut))
			}
		})
	}
}
