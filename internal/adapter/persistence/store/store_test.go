package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"estimate_app/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// roundTrip exercises the behaviour every backend shares.
func roundTrip(t *testing.T, s interface {
	Get(context.Context, string) ([]byte, bool, error)
	Set(context.Context, string, []byte) error
}) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, KeyClients)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, KeyClients, []byte(`[{"id":"1"}]`)))
	got, found, err := s.Get(ctx, KeyClients)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, s.Set(ctx, KeyClients, []byte(`[]`)))
	got, _, err = s.Get(ctx, KeyClients)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	_, found, err = s.Get(ctx, KeyEstimates)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore(t *testing.T) {
	roundTrip(t, NewMemoryStore())
}

func TestMemoryStore_CopiesPayload(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	payload := []byte(`"abc"`)
	require.NoError(t, s.Set(ctx, "k", payload))
	payload[1] = 'z'

	got, _, _ := s.Get(ctx, "k")
	assert.Equal(t, `"abc"`, string(got))
	got[1] = 'y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, `"abc"`, string(again))
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	roundTrip(t, s)

	_, err = os.Stat(filepath.Join(dir, KeyClients+".json"))
	assert.NoError(t, err)

	_, _, err = s.Get(context.Background(), "../escape")
	assert.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "records.db"))
	require.NoError(t, err)
	defer s.Close()
	roundTrip(t, s)
}

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	getErr error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	k := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[aws.ToString(in.TableName)+"/"+k]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	k := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[aws.ToString(in.TableName)+"/"+k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoDBStore(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
	s := NewDynamoDBStore(fake, "")
	roundTrip(t, s)
	_, ok := fake.items["records/"+KeyClients]
	assert.True(t, ok, "default table name should be used")
}

func TestDynamoDBStore_BackendError(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, getErr: errors.New("throttled")}
	_, _, err := NewDynamoDBStore(fake, "t").Get(context.Background(), "k")
	assert.Error(t, err)
}

type sample struct {
	Name string `json:"name"`
}

func TestLoad_AbsentReturnsDefault(t *testing.T) {
	got, err := Load(context.Background(), NewMemoryStore(), KeySettings, sample{Name: "def"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "def", got.Name)
}

func TestLoad_MalformedReturnsDefaultAndLogs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewMemoryStore()
	require.NoError(t, s.Set(context.Background(), KeySettings, []byte("{not json")))

	got, err := Load(context.Background(), s, KeySettings, sample{Name: "def"}, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "def", got.Name)
	assert.Equal(t, 1, logs.FilterMessage("malformed record payload, using default").Len())
}

func TestLoadSave_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, Save(ctx, s, KeyClients, []sample{{Name: "a"}, {Name: "b"}}))

	got, err := Load(ctx, s, KeyClients, []sample{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []sample{{Name: "a"}, {Name: "b"}}, got)
}

func TestLoad_BackendErrorIsReturned(t *testing.T) {
	fake := &fakeDynamo{getErr: errors.New("boom")}
	_, err := Load(context.Background(), NewDynamoDBStore(fake, "t"), KeyClients, []sample{}, nil)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	s, closeFn, err := Open(ctx, &config.Config{StoreDriver: "memory"}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = Open(ctx, &config.Config{StoreDriver: "file", StorePath: t.TempDir()}, log)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = Open(ctx, &config.Config{StoreDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "r.db")}, log)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	assert.NoError(t, closeFn())

	_, _, err = Open(ctx, &config.Config{StoreDriver: "cassandra"}, log)
	assert.Error(t, err)
}
