package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/bookings"
	"github.com/fahrtenbuch/backend/services/bookings/mocks"
)

func newBookingUC(t *testing.T) (bookings.BookingUC, *mocks.MockBookingRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockBookingRepo(ctrl)
	return NewBookingUC(&models.Config{}, repo), repo
}

func memberSession(userID, groupID uuid.UUID) *models.Session {
	return &models.Session{
		UserID:       userID,
		GroupID:      &groupID,
		Role:         models.RoleMember,
		Capabilities: models.CapabilitiesForRole(models.RoleMember),
	}
}

func window(offset, length time.Duration) models.BookingRequest {
	start := time.Now().Add(offset)
	return models.BookingRequest{StartAt: start, EndAt: start.Add(length)}
}

func TestCreateBooking_AssignsGroupAndCreator(t *testing.T) {
	uc, repo := newBookingUC(t)

	userID := uuid.New()
	groupID := uuid.New()
	req := window(time.Hour, 2*time.Hour)

	repo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, groupID, b.GroupID)
			assert.Equal(t, userID, b.DriverID)
			assert.Equal(t, req.StartAt, b.StartAt)
			return nil
		})

	booking, err := uc.CreateBooking(context.Background(), memberSession(userID, groupID), req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booking.ID)
}

func TestCreateBooking_RejectsInvertedWindow(t *testing.T) {
	uc, _ := newBookingUC(t)

	start := time.Now().Add(time.Hour)
	req := models.BookingRequest{StartAt: start, EndAt: start.Add(-time.Minute)}

	_, err := uc.CreateBooking(context.Background(), memberSession(uuid.New(), uuid.New()), req)
	assert.ErrorIs(t, err, bookings.ErrEndNotAfterStart)

	// zero-length windows are rejected as well
	req.EndAt = start
	_, err = uc.CreateBooking(context.Background(), memberSession(uuid.New(), uuid.New()), req)
	assert.ErrorIs(t, err, bookings.ErrEndNotAfterStart)
}

func TestCreateBooking_RequiresGroup(t *testing.T) {
	uc, _ := newBookingUC(t)

	session := &models.Session{UserID: uuid.New(), Role: models.RoleMember}
	_, err := uc.CreateBooking(context.Background(), session, window(time.Hour, time.Hour))
	assert.ErrorIs(t, err, bookings.ErrNoGroup)
}

func TestUpdateBooking_GroupMismatchRejectedBeforeAnyWrite(t *testing.T) {
	// A caller from another group is refused on the ownership check alone:
	// the repository must see no update, not even an invalid-window error.
	uc, repo := newBookingUC(t)

	booking := &models.Booking{
		ID:       uuid.New(),
		GroupID:  uuid.New(),
		DriverID: uuid.New(),
		StartAt:  time.Now(),
		EndAt:    time.Now().Add(time.Hour),
	}

	repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

	outsider := memberSession(uuid.New(), uuid.New())
	_, err := uc.UpdateBooking(context.Background(), outsider, booking.ID, models.BookingRequest{})
	assert.ErrorIs(t, err, bookings.ErrGroupMismatch)
}

func TestUpdateBooking_SameGroupMayEdit(t *testing.T) {
	uc, repo := newBookingUC(t)

	groupID := uuid.New()
	booking := &models.Booking{
		ID:       uuid.New(),
		GroupID:  groupID,
		DriverID: uuid.New(),
		StartAt:  time.Now(),
		EndAt:    time.Now().Add(time.Hour),
	}

	req := window(48*time.Hour, 3*time.Hour)

	repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Return(nil)

	// any member of the owning group may edit, not just the creator
	editor := memberSession(uuid.New(), groupID)
	updated, err := uc.UpdateBooking(context.Background(), editor, booking.ID, req)
	require.NoError(t, err)
	assert.Equal(t, req.StartAt, updated.StartAt)
	assert.Equal(t, req.EndAt, updated.EndAt)
}

func TestUpdateBooking_AdminBypassesGroupCheck(t *testing.T) {
	uc, repo := newBookingUC(t)

	booking := &models.Booking{
		ID:       uuid.New(),
		GroupID:  uuid.New(),
		DriverID: uuid.New(),
	}

	adminGroup := uuid.New()
	admin := &models.Session{
		UserID:       uuid.New(),
		GroupID:      &adminGroup,
		Role:         models.RoleAdmin,
		Capabilities: models.CapabilitiesForRole(models.RoleAdmin),
	}

	repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.UpdateBooking(context.Background(), admin, booking.ID, window(time.Hour, time.Hour))
	require.NoError(t, err)
}

func TestDeleteBooking_CreatorOrAdminOnly(t *testing.T) {
	uc, repo := newBookingUC(t)

	creator := uuid.New()
	groupID := uuid.New()
	booking := &models.Booking{ID: uuid.New(), GroupID: groupID, DriverID: creator}

	// same group but not the creator
	repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	err := uc.DeleteBooking(context.Background(), memberSession(uuid.New(), groupID), booking.ID)
	assert.ErrorIs(t, err, bookings.ErrNotBookingOwner)

	// the creator may delete
	repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	repo.EXPECT().DeleteBooking(gomock.Any(), booking.ID).Return(nil)
	err = uc.DeleteBooking(context.Background(), memberSession(creator, groupID), booking.ID)
	require.NoError(t, err)
}

func TestListUpcoming_RejectsInvertedRange(t *testing.T) {
	uc, _ := newBookingUC(t)

	from := time.Now()
	_, err := uc.ListUpcoming(context.Background(), memberSession(uuid.New(), uuid.New()), from, from.Add(-time.Hour))
	assert.ErrorIs(t, err, bookings.ErrInvalidRange)
}

func TestGetBooking_OutsideGroupHidden(t *testing.T) {
	uc, repo := newBookingUC(t)

	booking := &models.Booking{ID: uuid.New(), GroupID: uuid.New(), DriverID: uuid.New()}
	repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := uc.GetBooking(context.Background(), memberSession(uuid.New(), uuid.New()), booking.ID)
	assert.ErrorIs(t, err, bookings.ErrGroupMismatch)
}
