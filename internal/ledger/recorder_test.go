package ledger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/mocks"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

const (
	minterAddress   = "0x1111111111111111111111111111111111111111"
	creatorAddress  = "0x2222222222222222222222222222222222222222"
	contractAddress = "0x3333333333333333333333333333333333333333"
	mintTxHash      = "0x4444444444444444444444444444444444444444444444444444444444444444"
)

func validInput() RecordMintInput {
	return RecordMintInput{
		PostID:          10,
		TokenURI:        "ipfs://QmTest",
		TokenID:         1,
		TxHash:          mintTxHash,
		ContractAddress: contractAddress,
		MinterAddress:   minterAddress,
	}
}

func TestRecordMintValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := NewRecorder(mocks.NewMockStore(ctrl), mocks.NewMockPublisher(ctrl))

	cases := []struct {
		name   string
		mutate func(*RecordMintInput)
	}{
		{"missing post id", func(in *RecordMintInput) { in.PostID = 0 }},
		{"missing token uri", func(in *RecordMintInput) { in.TokenURI = "" }},
		{"bad tx hash", func(in *RecordMintInput) { in.TxHash = "0x123" }},
		{"bad contract", func(in *RecordMintInput) { in.ContractAddress = "nope" }},
		{"bad minter", func(in *RecordMintInput) { in.MinterAddress = "nope" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			_, err := recorder.RecordMint(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRecordMintPostNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	recorder := NewRecorder(st, mocks.NewMockPublisher(ctrl))

	st.EXPECT().GetPostByID(gomock.Any(), uint64(10)).Return(nil, nil)

	_, err := recorder.RecordMint(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestRecordMintEnqueuesDownstreamEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	pub := mocks.NewMockPublisher(ctrl)
	recorder := NewRecorder(st, pub)

	st.EXPECT().GetPostByID(gomock.Any(), uint64(10)).
		Return(&schema.Post{ID: 10, AuthorAddress: creatorAddress}, nil)
	st.EXPECT().EnsureUser(gomock.Any(), minterAddress).
		Return(&schema.User{Address: minterAddress}, nil)

	var captured store.CreateMintRecordInput
	st.EXPECT().CreateMintRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateMintRecordInput) (*schema.MintRecord, error) {
			captured = input
			record := input.Record
			record.ID = 1
			return &record, nil
		})
	pub.EXPECT().PublishMintRecorded(gomock.Any(), gomock.Any()).Return(nil)

	record, err := recorder.RecordMint(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, mintTxHash, record.TxHash)
	assert.Equal(t, minterAddress, record.MinterAddress)

	require.Len(t, captured.Tasks, 3)
	assert.Equal(t, schema.OutboxKindStarCredit, captured.Tasks[0].Kind)
	assert.Equal(t, schema.OutboxKindNotification, captured.Tasks[1].Kind)
	assert.Equal(t, schema.OutboxKindMissionProgress, captured.Tasks[2].Kind)

	var credit domain.StarCreditPayload
	require.NoError(t, json.Unmarshal(captured.Tasks[0].Payload, &credit))
	assert.Equal(t, creatorAddress, credit.Address)
	assert.Equal(t, domain.StarsPerMint, credit.Amount)

	var notif domain.NotificationPayload
	require.NoError(t, json.Unmarshal(captured.Tasks[1].Payload, &notif))
	assert.Equal(t, creatorAddress, notif.Recipient)
	assert.Equal(t, minterAddress, notif.Sender)
	assert.Equal(t, domain.NotificationTypeMint, notif.Type)

	var progress domain.MissionProgressPayload
	require.NoError(t, json.Unmarshal(captured.Tasks[2].Payload, &progress))
	assert.Equal(t, minterAddress, progress.Address)
	assert.Equal(t, "mint", progress.Action)

	// Every task gets a distinct event id
	assert.NotEqual(t, captured.Tasks[0].EventID, captured.Tasks[1].EventID)
	assert.NotEqual(t, captured.Tasks[1].EventID, captured.Tasks[2].EventID)
}

func TestRecordMintSelfMintSkipsNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	pub := mocks.NewMockPublisher(ctrl)
	recorder := NewRecorder(st, pub)

	st.EXPECT().GetPostByID(gomock.Any(), uint64(10)).
		Return(&schema.Post{ID: 10, AuthorAddress: minterAddress}, nil)
	st.EXPECT().EnsureUser(gomock.Any(), minterAddress).
		Return(&schema.User{Address: minterAddress}, nil)

	st.EXPECT().CreateMintRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateMintRecordInput) (*schema.MintRecord, error) {
			require.Len(t, input.Tasks, 2)
			assert.Equal(t, schema.OutboxKindStarCredit, input.Tasks[0].Kind)
			assert.Equal(t, schema.OutboxKindMissionProgress, input.Tasks[1].Kind)
			record := input.Record
			record.ID = 1
			return &record, nil
		})
	pub.EXPECT().PublishMintRecorded(gomock.Any(), gomock.Any()).Return(nil)

	_, err := recorder.RecordMint(context.Background(), validInput())
	require.NoError(t, err)
}

func TestRecordMintDuplicateTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	recorder := NewRecorder(st, mocks.NewMockPublisher(ctrl))

	st.EXPECT().GetPostByID(gomock.Any(), uint64(10)).
		Return(&schema.Post{ID: 10, AuthorAddress: creatorAddress}, nil)
	st.EXPECT().EnsureUser(gomock.Any(), minterAddress).
		Return(&schema.User{Address: minterAddress}, nil)
	st.EXPECT().CreateMintRecord(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateTransaction)

	// No publish expectation: a duplicate must not emit an event
	_, err := recorder.RecordMint(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
}

func TestRecordMintNormalizesAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	pub := mocks.NewMockPublisher(ctrl)
	recorder := NewRecorder(st, pub)

	st.EXPECT().GetPostByID(gomock.Any(), uint64(10)).
		Return(&schema.Post{ID: 10, AuthorAddress: creatorAddress}, nil)
	st.EXPECT().EnsureUser(gomock.Any(), "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd").
		Return(&schema.User{Address: "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"}, nil)
	st.EXPECT().CreateMintRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.CreateMintRecordInput) (*schema.MintRecord, error) {
			assert.Equal(t, "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd", in.Record.MinterAddress)
			assert.Equal(t, contractAddress, in.Record.ContractAddress)
			record := in.Record
			record.ID = 1
			return &record, nil
		})
	pub.EXPECT().PublishMintRecorded(gomock.Any(), gomock.Any()).Return(nil)

	mixed := validInput()
	mixed.MinterAddress = "0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD"
	_, err := recorder.RecordMint(context.Background(), mixed)
	require.NoError(t, err)
}
