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
	"github.com/fahrtenbuch/backend/services/trips"
	"github.com/fahrtenbuch/backend/services/trips/mocks"
)

type tripMocks struct {
	repo  *mocks.MockTripRepo
	gw    *mocks.MockTripGW
	rates *mocks.MockRateProvider
	cache *mocks.MockActiveTripCache
}

func newTripUC(t *testing.T) (trips.TripUC, tripMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := tripMocks{
		repo:  mocks.NewMockTripRepo(ctrl),
		gw:    mocks.NewMockTripGW(ctrl),
		rates: mocks.NewMockRateProvider(ctrl),
		cache: mocks.NewMockActiveTripCache(ctrl),
	}

	uc := NewTripUC(&models.Config{}, m.repo, m.gw, m.rates, m.cache)
	return uc, m
}

func memberSession(userID, groupID uuid.UUID) *models.Session {
	return &models.Session{
		UserID:       userID,
		GroupID:      &groupID,
		Role:         models.RoleMember,
		Capabilities: models.CapabilitiesForRole(models.RoleMember),
	}
}

func TestStartTrip_NoGapAtLastEnd(t *testing.T) {
	// Last recorded end is 1000 km and the driver starts exactly there:
	// no gap trip, no closed trip, just a fresh active trip.
	uc, m := newTripUC(t)

	driverID := uuid.New()
	groupID := uuid.New()
	session := memberSession(driverID, groupID)

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().GetLastEndKm(gomock.Any()).Return(1000, nil)
	m.rates.EXPECT().RatePerKm(gomock.Any()).Return(0.30, nil)

	m.repo.EXPECT().
		ApplyStart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result *models.TripStartResult) error {
			assert.Nil(t, result.ClosedTrip)
			assert.Nil(t, result.GapTrip)
			require.NotNil(t, result.ActiveTrip)
			assert.Equal(t, driverID, result.ActiveTrip.DriverID)
			assert.Equal(t, groupID, result.ActiveTrip.GroupID)
			assert.Equal(t, 1000, result.ActiveTrip.StartKm)
			return nil
		})
	m.cache.EXPECT().SetActiveTrip(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.StartTrip(context.Background(), session, models.TripStartRequest{StartKm: 1000})
	require.NoError(t, err)
	assert.Nil(t, result.GapTrip)
	assert.Equal(t, 1000, result.ActiveTrip.StartKm)
}

func TestStartTrip_BackfillsOdometerGap(t *testing.T) {
	// Last recorded end is 1000 km, no trip in progress, start at 1200 km:
	// exactly one unclaimed trip covering 1000-1200 is backfilled.
	uc, m := newTripUC(t)

	driverID := uuid.New()
	groupID := uuid.New()
	session := memberSession(driverID, groupID)

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().GetLastEndKm(gomock.Any()).Return(1000, nil)
	m.rates.EXPECT().RatePerKm(gomock.Any()).Return(0.50, nil)

	m.repo.EXPECT().
		ApplyStart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result *models.TripStartResult) error {
			assert.Nil(t, result.ClosedTrip)
			require.NotNil(t, result.GapTrip)
			assert.Nil(t, result.GapTrip.DriverID)
			assert.Equal(t, 1000, result.GapTrip.StartKm)
			assert.Equal(t, 1200, result.GapTrip.EndKm)
			assert.InDelta(t, 100.0, result.GapTrip.Cost, 1e-9)
			assert.Equal(t, 1200, result.ActiveTrip.StartKm)
			assert.Equal(t, driverID, result.ActiveTrip.DriverID)
			return nil
		})
	m.cache.EXPECT().SetActiveTrip(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.StartTrip(context.Background(), session, models.TripStartRequest{StartKm: 1200})
	require.NoError(t, err)
	require.NotNil(t, result.GapTrip)
	assert.True(t, result.GapTrip.Unclaimed())
}

func TestStartTrip_ClosesOtherDriversActiveTrip(t *testing.T) {
	// Another driver left a trip open. Starting closes it unclaimed with a
	// hand-off note and opens a fresh active trip for the caller.
	uc, m := newTripUC(t)

	driverID := uuid.New()
	otherDriverID := uuid.New()
	groupID := uuid.New()
	session := memberSession(driverID, groupID)

	stale := &models.ActiveTrip{
		ID:        uuid.New(),
		DriverID:  otherDriverID,
		GroupID:   groupID,
		StartKm:   1000,
		StartedAt: time.Now().Add(-2 * time.Hour),
	}

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(stale, nil)
	m.repo.EXPECT().GetLastEndKm(gomock.Any()).Return(1000, nil)
	m.rates.EXPECT().RatePerKm(gomock.Any()).Return(0.30, nil)

	m.repo.EXPECT().
		ApplyStart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result *models.TripStartResult) error {
			require.NotNil(t, result.ClosedTrip)
			assert.Nil(t, result.ClosedTrip.DriverID, "hand-off closure must be unclaimed")
			assert.NotEmpty(t, result.ClosedTrip.Comment)
			assert.Equal(t, 1000, result.ClosedTrip.StartKm)
			assert.Equal(t, 1050, result.ClosedTrip.EndKm)
			assert.Nil(t, result.GapTrip)
			assert.Equal(t, driverID, result.ActiveTrip.DriverID)
			assert.Equal(t, 1050, result.ActiveTrip.StartKm)
			return nil
		})
	m.cache.EXPECT().SetActiveTrip(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.StartTrip(context.Background(), session, models.TripStartRequest{StartKm: 1050})
	require.NoError(t, err)
}

func TestStartTrip_EqualValueClosesZeroDistanceHandOff(t *testing.T) {
	// Equal start value is allowed on hand-off.
	uc, m := newTripUC(t)

	session := memberSession(uuid.New(), uuid.New())
	stale := &models.ActiveTrip{
		ID:       uuid.New(),
		DriverID: uuid.New(),
		GroupID:  uuid.New(),
		StartKm:  1000,
	}

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(stale, nil)
	m.repo.EXPECT().GetLastEndKm(gomock.Any()).Return(900, nil)
	m.rates.EXPECT().RatePerKm(gomock.Any()).Return(0.30, nil)
	m.repo.EXPECT().
		ApplyStart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result *models.TripStartResult) error {
			require.NotNil(t, result.ClosedTrip)
			assert.Equal(t, 1000, result.ClosedTrip.StartKm)
			assert.Equal(t, 1000, result.ClosedTrip.EndKm)
			return nil
		})
	m.cache.EXPECT().SetActiveTrip(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.StartTrip(context.Background(), session, models.TripStartRequest{StartKm: 1000})
	require.NoError(t, err)
}

func TestStartTrip_ReentrantStartKeepsDriverAttribution(t *testing.T) {
	// The same driver starting again closes their own open trip under
	// their name instead of leaving it unclaimed.
	uc, m := newTripUC(t)

	driverID := uuid.New()
	groupID := uuid.New()
	session := memberSession(driverID, groupID)

	stale := &models.ActiveTrip{
		ID:       uuid.New(),
		DriverID: driverID,
		GroupID:  groupID,
		StartKm:  1000,
	}

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(stale, nil)
	m.repo.EXPECT().GetLastEndKm(gomock.Any()).Return(1000, nil)
	m.rates.EXPECT().RatePerKm(gomock.Any()).Return(0.30, nil)
	m.repo.EXPECT().
		ApplyStart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result *models.TripStartResult) error {
			require.NotNil(t, result.ClosedTrip)
			require.NotNil(t, result.ClosedTrip.DriverID)
			assert.Equal(t, driverID, *result.ClosedTrip.DriverID)
			assert.Empty(t, result.ClosedTrip.Comment)
			return nil
		})
	m.cache.EXPECT().SetActiveTrip(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.StartTrip(context.Background(), session, models.TripStartRequest{StartKm: 1080})
	require.NoError(t, err)
}

func TestStartTrip_RejectsOdometerBehindLastEnd(t *testing.T) {
	uc, m := newTripUC(t)

	session := memberSession(uuid.New(), uuid.New())

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().GetLastEndKm(gomock.Any()).Return(1000, nil)

	_, err := uc.StartTrip(context.Background(), session, models.TripStartRequest{StartKm: 900})
	assert.ErrorIs(t, err, trips.ErrOdometerBehind)
}

func TestStartTrip_RejectsBehindActiveTripStart(t *testing.T) {
	uc, m := newTripUC(t)

	session := memberSession(uuid.New(), uuid.New())
	stale := &models.ActiveTrip{
		ID:       uuid.New(),
		DriverID: uuid.New(),
		GroupID:  uuid.New(),
		StartKm:  1100,
	}

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(stale, nil)
	m.repo.EXPECT().GetLastEndKm(gomock.Any()).Return(1000, nil)
	m.rates.EXPECT().RatePerKm(gomock.Any()).Return(0.30, nil)

	_, err := uc.StartTrip(context.Background(), session, models.TripStartRequest{StartKm: 1050})
	assert.ErrorIs(t, err, trips.ErrOdometerBehind)
}

func TestStartTrip_RequiresGroup(t *testing.T) {
	uc, _ := newTripUC(t)

	session := &models.Session{UserID: uuid.New(), Role: models.RoleMember}

	_, err := uc.StartTrip(context.Background(), session, models.TripStartRequest{StartKm: 100})
	assert.ErrorIs(t, err, trips.ErrNoGroup)
}

func TestEndTrip_CreatesTripWithCost(t *testing.T) {
	// Start at 1000, end at 1050: one attributed trip over 50 km at the
	// current rate; the active trip row is gone afterwards.
	uc, m := newTripUC(t)

	driverID := uuid.New()
	groupID := uuid.New()
	session := memberSession(driverID, groupID)

	active := &models.ActiveTrip{
		ID:       uuid.New(),
		DriverID: driverID,
		GroupID:  groupID,
		StartKm:  1000,
	}

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(active, nil)
	m.rates.EXPECT().RatePerKm(gomock.Any()).Return(0.30, nil)

	m.repo.EXPECT().
		ApplyEnd(gomock.Any(), active.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, trip *models.Trip) error {
			assert.Equal(t, 1000, trip.StartKm)
			assert.Equal(t, 1050, trip.EndKm)
			require.NotNil(t, trip.DriverID)
			assert.Equal(t, driverID, *trip.DriverID)
			assert.InDelta(t, 15.0, trip.Cost, 1e-9)
			return nil
		})
	m.cache.EXPECT().ClearActiveTrip(gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishTripCompleted(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.EndTrip(context.Background(), session, models.TripEndRequest{EndKm: 1050})
	require.NoError(t, err)
	assert.Equal(t, 50, trip.Distance())
}

func TestEndTrip_RejectsEndNotAfterStart(t *testing.T) {
	uc, m := newTripUC(t)

	driverID := uuid.New()
	session := memberSession(driverID, uuid.New())

	active := &models.ActiveTrip{
		ID:       uuid.New(),
		DriverID: driverID,
		GroupID:  uuid.New(),
		StartKm:  1000,
	}

	// Equal and lower values are both rejected; the active trip stays.
	for _, endKm := range []int{1000, 990} {
		m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(active, nil)

		_, err := uc.EndTrip(context.Background(), session, models.TripEndRequest{EndKm: endKm})
		assert.ErrorIs(t, err, trips.ErrEndBeforeStart)
	}
}

func TestEndTrip_NoActiveTrip(t *testing.T) {
	uc, m := newTripUC(t)

	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(nil, nil)

	_, err := uc.EndTrip(context.Background(), memberSession(uuid.New(), uuid.New()), models.TripEndRequest{EndKm: 1100})
	assert.ErrorIs(t, err, trips.ErrNoActiveTrip)
}

func TestEndTrip_RejectsForeignActiveTrip(t *testing.T) {
	uc, m := newTripUC(t)

	active := &models.ActiveTrip{
		ID:       uuid.New(),
		DriverID: uuid.New(),
		GroupID:  uuid.New(),
		StartKm:  1000,
	}
	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(active, nil)

	_, err := uc.EndTrip(context.Background(), memberSession(uuid.New(), uuid.New()), models.TripEndRequest{EndKm: 1100})
	assert.ErrorIs(t, err, trips.ErrNotTripOwner)
}

func TestClaimTrip_AttributesUnclaimedTrip(t *testing.T) {
	uc, m := newTripUC(t)

	driverID := uuid.New()
	session := memberSession(driverID, uuid.New())

	tripID := uuid.New()
	unclaimed := &models.Trip{
		ID:      tripID,
		GroupID: uuid.New(),
		StartKm: 1000,
		EndKm:   1200,
		Comment: "Backfilled odometer gap",
	}

	m.repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(unclaimed, nil)
	m.repo.EXPECT().ClaimTrip(gomock.Any(), tripID, driverID).Return(nil)
	m.gw.EXPECT().PublishTripClaimed(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.ClaimTrip(context.Background(), session, tripID)
	require.NoError(t, err)
	require.NotNil(t, trip.DriverID)
	assert.Equal(t, driverID, *trip.DriverID)
	assert.Empty(t, trip.Comment)
}

func TestClaimTrip_RejectsClaimedTrip(t *testing.T) {
	uc, m := newTripUC(t)

	owner := uuid.New()
	tripID := uuid.New()
	claimed := &models.Trip{ID: tripID, DriverID: &owner}

	m.repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(claimed, nil)

	_, err := uc.ClaimTrip(context.Background(), memberSession(uuid.New(), uuid.New()), tripID)
	assert.ErrorIs(t, err, trips.ErrTripClaimed)
}

func TestUpdateTrip_OwnerOnly(t *testing.T) {
	uc, m := newTripUC(t)

	owner := uuid.New()
	tripID := uuid.New()
	trip := &models.Trip{ID: tripID, DriverID: &owner, StartKm: 100, EndKm: 200}

	m.repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)

	otherSession := memberSession(uuid.New(), uuid.New())
	_, err := uc.UpdateTrip(context.Background(), otherSession, tripID, models.TripUpdateRequest{StartKm: 100, EndKm: 220})
	assert.ErrorIs(t, err, trips.ErrForbidden)
}

func TestUpdateTrip_AdminMayEditAndInvariantHolds(t *testing.T) {
	uc, m := newTripUC(t)

	owner := uuid.New()
	tripID := uuid.New()
	trip := &models.Trip{ID: tripID, DriverID: &owner, StartKm: 100, EndKm: 200}

	adminID := uuid.New()
	groupID := uuid.New()
	admin := &models.Session{
		UserID:       adminID,
		GroupID:      &groupID,
		Role:         models.RoleAdmin,
		Capabilities: models.CapabilitiesForRole(models.RoleAdmin),
	}

	m.repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil).Times(2)

	_, err := uc.UpdateTrip(context.Background(), admin, tripID, models.TripUpdateRequest{StartKm: 300, EndKm: 250})
	assert.ErrorIs(t, err, trips.ErrEndBeforeStart)

	m.repo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any()).Return(nil)
	updated, err := uc.UpdateTrip(context.Background(), admin, tripID, models.TripUpdateRequest{StartKm: 100, EndKm: 250, Date: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 250, updated.EndKm)
}

func TestGetActiveTrip_ReconcilesCacheFromRepo(t *testing.T) {
	uc, m := newTripUC(t)

	active := &models.ActiveTrip{ID: uuid.New(), DriverID: uuid.New(), StartKm: 500}

	m.cache.EXPECT().GetActiveTrip(gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().GetActiveTrip(gomock.Any()).Return(active, nil)
	m.cache.EXPECT().SetActiveTrip(gomock.Any(), active).Return(nil)

	got, err := uc.GetActiveTrip(context.Background())
	require.NoError(t, err)
	assert.Equal(t, active, got)
}
