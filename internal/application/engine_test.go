package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	memorystore "github.com/bnema/together-notify/internal/adapters/snapshot/memory"
	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
	"github.com/bnema/together-notify/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testProfile = domain.Profile{Name: "bob", Partner: "alice"}

type recordingNotifier struct {
	mu     sync.Mutex
	bodies []string
	onPost func(ports.Notification)
	err    error
}

func (n *recordingNotifier) Post(_ context.Context, notification ports.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.onPost != nil {
		n.onPost(notification)
	}
	n.bodies = append(n.bodies, notification.Body)
	return n.err
}

func (n *recordingNotifier) Bodies() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.bodies...)
}

type engineFixture struct {
	engine   *Engine
	profiles *mocks.MockProfileStore
	source   *mocks.MockStateSource
	store    *memorystore.Store
	notifier *recordingNotifier
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)).Maybe()

	fixture := &engineFixture{
		profiles: mocks.NewMockProfileStore(t),
		source:   mocks.NewMockStateSource(t),
		store:    memorystore.NewStore(),
		notifier: &recordingNotifier{},
	}
	dispatcher := NewDispatcher(fixture.notifier, clock, nil, nil)
	fixture.engine = NewEngine(fixture.profiles, fixture.source, fixture.store, dispatcher, nil, nil)

	return fixture
}

func mustState(t *testing.T, body string) domain.GlobalState {
	t.Helper()

	state, err := domain.ParseGlobalState([]byte(body))
	require.NoError(t, err)
	return state
}

func TestEngineRunCycleWithoutProfileIsNoOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile domain.Profile
		ok      bool
	}{
		{name: "absent profile", ok: false},
		{name: "profile without partner", profile: domain.Profile{Name: "bob"}, ok: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newEngineFixture(t)
			f.profiles.EXPECT().Get(mock.Anything).Return(tc.profile, tc.ok, nil).Once()

			report, err := f.engine.RunCycle(context.Background())
			require.NoError(t, err)
			assert.True(t, report.Skipped)
			assert.NotEmpty(t, report.ID)
			assert.Empty(t, f.notifier.Bodies())
		})
	}
}

func TestEngineRunCycleProfileErrorFailsCycle(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t)
	f.profiles.EXPECT().Get(mock.Anything).Return(domain.Profile{}, false, fmt.Errorf("parse profile: %w", domain.ErrProfileInvalid)).Once()

	_, err := f.engine.RunCycle(context.Background())
	assert.ErrorIs(t, err, domain.ErrProfileInvalid)
}

func TestEngineRunCycleFirstObservationDispatchesAndPersists(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t)
	f.profiles.EXPECT().Get(mock.Anything).Return(testProfile, true, nil).Once()
	f.source.EXPECT().Fetch(mock.Anything).Return(mustState(t, `{"alice":{"activities":[{"type":"sleeping","timestamp":"T1"}]},"bucketList":[1,2,3]}`), nil).Once()

	report, err := f.engine.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "alice", report.Partner)
	assert.True(t, report.PartnerPresent)
	assert.Equal(t, 3, report.BucketCount)
	assert.Equal(t, []domain.ChangeEvent{{Kind: domain.ChangeActivity, Activity: "sleeping"}}, report.Events)
	assert.Equal(t, []string{"alice is sleeping 😴"}, f.notifier.Bodies())

	stored, ok, err := f.store.Get(context.Background(), domain.PartnerStateKey("alice"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"activities":[{"type":"sleeping","timestamp":"T1"}]}`, stored)

	count, err := f.store.GetInt(context.Background(), domain.BucketCountKey("alice"))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestEngineRunCycleIsIdempotentWithoutRemoteChange(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t)
	body := `{"alice":{"mood":"happy","studyLogs":[{"subject":"math"}],"gameData":{"totalScore":40}},"bucketList":["a"]}`
	f.profiles.EXPECT().Get(mock.Anything).Return(testProfile, true, nil).Twice()
	f.source.EXPECT().Fetch(mock.Anything).Return(mustState(t, body), nil).Twice()

	first, err := f.engine.RunCycle(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, first.Events)

	second, err := f.engine.RunCycle(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Unchanged)
	assert.Empty(t, second.Events)
	assert.Len(t, f.notifier.Bodies(), len(first.Events))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEngineRunCycleFetchFailureLeavesSnapshotsUntouched(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t)
	f.profiles.EXPECT().Get(mock.Anything).Return(testProfile, true, nil).Once()
	f.source.EXPECT().Fetch(mock.Anything).Return(domain.GlobalState{}, fmt.Errorf("%w: GET /state: status 500", domain.ErrFetchFailure)).Once()

	report, err := f.engine.RunCycle(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailure)
	assert.Empty(t, report.Events)
	assert.Empty(t, f.notifier.Bodies())

	_, ok, err := f.store.Get(context.Background(), domain.PartnerStateKey("alice"))
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := f.store.GetInt(context.Background(), domain.BucketCountKey("alice"))
	require.NoError(t, err)
	assert.Equal(t, domain.NoBucketCount, count)
}

func TestEngineRunCycleBucketListGrowthNotifiesOnce(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t)
	require.NoError(t, f.store.PutInt(context.Background(), domain.BucketCountKey("alice"), 3))
	f.profiles.EXPECT().Get(mock.Anything).Return(testProfile, true, nil).Once()
	f.source.EXPECT().Fetch(mock.Anything).Return(mustState(t, `{"bucketList":[1,2,3,4,5]}`), nil).Once()

	report, err := f.engine.RunCycle(context.Background())
	require.NoError(t, err)

	assert.False(t, report.PartnerPresent)
	assert.Equal(t, []domain.ChangeEvent{{Kind: domain.ChangeBucketList, Added: 2}}, report.Events)
	assert.Equal(t, []string{"alice added a new item to the bucket list! ✨"}, f.notifier.Bodies())

	count, err := f.store.GetInt(context.Background(), domain.BucketCountKey("alice"))
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestEngineRunCycleWritesSnapshotAfterDispatch(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t)
	f.profiles.EXPECT().Get(mock.Anything).Return(testProfile, true, nil).Once()
	f.source.EXPECT().Fetch(mock.Anything).Return(mustState(t, `{"alice":{"mood":"tired"}}`), nil).Once()

	var storedDuringDispatch bool
	f.notifier.onPost = func(ports.Notification) {
		_, storedDuringDispatch, _ = f.store.Get(context.Background(), domain.PartnerStateKey("alice"))
	}

	_, err := f.engine.RunCycle(context.Background())
	require.NoError(t, err)

	assert.False(t, storedDuringDispatch)
	_, stored, err := f.store.Get(context.Background(), domain.PartnerStateKey("alice"))
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestEngineRunCycleDeniedNotificationStillPersists(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t)
	f.notifier.err = ports.ErrNotificationDenied
	f.profiles.EXPECT().Get(mock.Anything).Return(testProfile, true, nil).Once()
	f.source.EXPECT().Fetch(mock.Anything).Return(mustState(t, `{"alice":{"mood":"tired"}}`), nil).Once()

	report, err := f.engine.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Events, 1)

	stored, ok, err := f.store.Get(context.Background(), domain.PartnerStateKey("alice"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"mood":"tired"}`, stored)
}

func TestEngineRunCyclePointsReceivedUsesProfileName(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Put(ctx, domain.PartnerStateKey("alice"), `{"coupons":{"balances":{"alice":10,"bob":5}}}`))
	f.profiles.EXPECT().Get(mock.Anything).Return(testProfile, true, nil).Once()
	f.source.EXPECT().Fetch(mock.Anything).Return(mustState(t, `{"alice":{"coupons":{"balances":{"alice":10,"bob":7}}}}`), nil).Once()

	report, err := f.engine.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, []domain.ChangeEvent{{Kind: domain.ChangePointsReceived, Points: 2}}, report.Events)
	assert.Equal(t, []string{"alice gave you some points! 💖"}, f.notifier.Bodies())
}

func TestEngineRunCycleStoreErrorFailsCycle(t *testing.T) {
	t.Parallel()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Unix(0, 0)).Maybe()
	profiles := mocks.NewMockProfileStore(t)
	source := mocks.NewMockStateSource(t)
	store := mocks.NewMockSnapshotStore(t)
	notifier := &recordingNotifier{}

	storeErr := errors.New("disk full")
	profiles.EXPECT().Get(mock.Anything).Return(testProfile, true, nil).Once()
	source.EXPECT().Fetch(mock.Anything).Return(mustState(t, `{"alice":{"mood":"calm"}}`), nil).Once()
	store.EXPECT().Get(mock.Anything, domain.PartnerStateKey("alice")).Return("", false, nil).Once()
	store.EXPECT().Put(mock.Anything, domain.PartnerStateKey("alice"), `{"mood":"calm"}`).Return(storeErr).Once()

	engine := NewEngine(profiles, source, store, NewDispatcher(notifier, clock, nil, nil), nil, nil)

	_, err := engine.RunCycle(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, []string{"alice is feeling calm"}, notifier.Bodies())
}
