package missions

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/mocks"
	"github.com/somix-network/somix-ledger/internal/notifier"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

const userAddress = "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"

func newTestService(t *testing.T) (*Service, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	svc := NewService(st, notifier.NewService(st, notifier.NewHub()))
	return svc, st
}

func TestRecordActionMintDerivesCountFromRecords(t *testing.T) {
	svc, st := newTestService(t)

	st.EXPECT().GetMissionProgress(gomock.Any(), userAddress).Return(nil, nil)
	st.EXPECT().CountMintsByMinter(gomock.Any(), userAddress).Return(int64(3), nil)

	var saved *schema.MissionProgress
	st.EXPECT().SaveMissionProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *schema.MissionProgress) error {
			saved = p
			return nil
		})

	// mint_3_posts completes at 3 mints; an achievement notification follows
	st.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *schema.Notification) error {
			assert.Equal(t, userAddress, n.RecipientAddress)
			assert.Equal(t, domain.SystemSender, n.SenderAddress)
			assert.Equal(t, domain.NotificationTypeAchievement, n.Type)
			return nil
		})

	require.NoError(t, svc.RecordAction(context.Background(), userAddress, ActionMint))

	require.NotNil(t, saved)
	assert.EqualValues(t, 3, saved.Progress["mint"])

	var completed []string
	require.NoError(t, json.Unmarshal(saved.Completed, &completed))
	assert.Contains(t, completed, "mint_3_posts")
	assert.NotContains(t, completed, "mint_10_posts")
}

func TestRecordActionIncrementsCounter(t *testing.T) {
	svc, st := newTestService(t)

	existing := &schema.MissionProgress{
		Address:   userAddress,
		Progress:  datatypes.JSONMap{"post": float64(2)},
		Completed: datatypes.JSON([]byte(`[]`)),
		Claimed:   datatypes.JSON([]byte(`[]`)),
	}
	st.EXPECT().GetMissionProgress(gomock.Any(), userAddress).Return(existing, nil)

	var saved *schema.MissionProgress
	st.EXPECT().SaveMissionProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *schema.MissionProgress) error {
			saved = p
			return nil
		})
	st.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.RecordAction(context.Background(), userAddress, ActionPost))

	assert.EqualValues(t, 3, saved.Progress["post"])

	var completed []string
	require.NoError(t, json.Unmarshal(saved.Completed, &completed))
	assert.Contains(t, completed, "create_3_posts")
}

func TestRecordActionAlreadyCompletedSendsNoNotification(t *testing.T) {
	svc, st := newTestService(t)

	existing := &schema.MissionProgress{
		Address:   userAddress,
		Progress:  datatypes.JSONMap{"mint": float64(3)},
		Completed: datatypes.JSON([]byte(`["mint_3_posts"]`)),
		Claimed:   datatypes.JSON([]byte(`[]`)),
	}
	st.EXPECT().GetMissionProgress(gomock.Any(), userAddress).Return(existing, nil)
	st.EXPECT().CountMintsByMinter(gomock.Any(), userAddress).Return(int64(4), nil)
	st.EXPECT().SaveMissionProgress(gomock.Any(), gomock.Any()).Return(nil)

	// No CreateNotification expectation: completion fires exactly once
	require.NoError(t, svc.RecordAction(context.Background(), userAddress, ActionMint))
}

func TestListJoinsProgress(t *testing.T) {
	svc, st := newTestService(t)

	existing := &schema.MissionProgress{
		Address:   userAddress,
		Progress:  datatypes.JSONMap{"mint": float64(12), "post": float64(1)},
		Completed: datatypes.JSON([]byte(`["mint_3_posts","mint_10_posts"]`)),
		Claimed:   datatypes.JSON([]byte(`["mint_3_posts"]`)),
	}
	st.EXPECT().GetMissionProgress(gomock.Any(), userAddress).Return(existing, nil)

	statuses, err := svc.List(context.Background(), userAddress)
	require.NoError(t, err)
	require.Len(t, statuses, len(Catalog))

	byID := make(map[string]Status)
	for _, s := range statuses {
		byID[s.ID] = s
	}

	// Progress is capped at the target for display
	assert.EqualValues(t, 3, byID["mint_3_posts"].Progress)
	assert.True(t, byID["mint_3_posts"].Completed)
	assert.True(t, byID["mint_3_posts"].Claimed)

	assert.EqualValues(t, 10, byID["mint_10_posts"].Progress)
	assert.True(t, byID["mint_10_posts"].Completed)
	assert.False(t, byID["mint_10_posts"].Claimed)

	assert.EqualValues(t, 1, byID["create_3_posts"].Progress)
	assert.False(t, byID["create_3_posts"].Completed)
}

func TestListNoProgressRow(t *testing.T) {
	svc, st := newTestService(t)

	st.EXPECT().GetMissionProgress(gomock.Any(), userAddress).Return(nil, nil)

	statuses, err := svc.List(context.Background(), userAddress)
	require.NoError(t, err)
	require.Len(t, statuses, len(Catalog))
	for _, s := range statuses {
		assert.EqualValues(t, 0, s.Progress)
		assert.False(t, s.Completed)
		assert.False(t, s.Claimed)
	}
}

func TestClaimUnknownMission(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Claim(context.Background(), userAddress, "climb_everest")
	assert.ErrorIs(t, err, domain.ErrMissionNotFound)
}

func TestClaimPaysCatalogReward(t *testing.T) {
	svc, st := newTestService(t)

	st.EXPECT().ClaimMission(gomock.Any(), userAddress, "mint_3_posts", int64(50)).Return(nil)

	mission, err := svc.Claim(context.Background(), userAddress, "mint_3_posts")
	require.NoError(t, err)
	assert.Equal(t, int64(50), mission.Reward)
}
