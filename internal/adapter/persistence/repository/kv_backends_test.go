package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCredentials = credentials.NewStaticCredentialsProvider("local", "local", "")

func TestRedisKV(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseKeyValueStore(t, NewRedisKV(rdb, ""))

	t.Run("prefix namespaces keys", func(t *testing.T) {
		kv := NewRedisKV(rdb, "tenant-a:")
		require.NoError(t, kv.Put(context.Background(), "moap_data", []byte(`{"v":3}`)))

		stored, err := mr.Get("tenant-a:moap_data")
		require.NoError(t, err)
		assert.Equal(t, `{"v":3}`, stored)

		_, found, err := NewRedisKV(rdb, "tenant-b:").Get(context.Background(), "moap_data")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("server errors surface", func(t *testing.T) {
		mr.SetError("ERR simulated failure")
		defer mr.SetError("")
		_, _, err := NewRedisKV(rdb, "").Get(context.Background(), "moap_data")
		assert.Error(t, err)
	})
}

// fakeDynamo answers GetItem, PutItem and DeleteItem for one table keyed by "id".
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]any
	reads []map[string]any
}

func (f *fakeDynamo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	op := strings.TrimPrefix(r.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")
	switch op {
	case "GetItem":
		f.reads = append(f.reads, req)
		item, ok := f.items[dynamoID(req["Key"])]
		if !ok {
			_, _ = io.WriteString(w, `{}`)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"Item": item})
	case "PutItem":
		item, _ := req["Item"].(map[string]any)
		f.items[dynamoID(item)] = item
		_, _ = io.WriteString(w, `{}`)
	case "DeleteItem":
		delete(f.items, dynamoID(req["Key"]))
		_, _ = io.WriteString(w, `{}`)
	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprintf(w, `{"__type":"com.amazon.coral.service#UnknownOperationException","message":"%s"}`, op)
	}
}

func dynamoID(v any) string {
	attrs, _ := v.(map[string]any)
	id, _ := attrs["id"].(map[string]any)
	s, _ := id["S"].(string)
	return s
}

func TestDynamoKV(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]any{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := dynamodb.New(dynamodb.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		Credentials:  testCredentials,
	})

	exerciseKeyValueStore(t, NewDynamoKV(client, ""))

	t.Run("stores the payload as binary with a timestamp", func(t *testing.T) {
		require.NoError(t, NewDynamoKV(client, "").Put(context.Background(), "moap_data", []byte("{}")))

		fake.mu.Lock()
		item := fake.items["moap_data"]
		fake.mu.Unlock()
		require.NotNil(t, item)
		assert.Contains(t, item["payload"], "B")
		assert.Contains(t, item["updated_at"], "S")
	})

	t.Run("reads are consistent and use the default table", func(t *testing.T) {
		_, _, err := NewDynamoKV(client, "").Get(context.Background(), "moap_data")
		require.NoError(t, err)

		fake.mu.Lock()
		last := fake.reads[len(fake.reads)-1]
		fake.mu.Unlock()
		assert.Equal(t, defaultKVTableName, last["TableName"])
		assert.Equal(t, true, last["ConsistentRead"])
	})
}

// fakeS3 is a path-style object store that answers NoSuchKey for absent objects.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		b, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	case http.MethodPut:
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.objects[r.URL.Path] = b
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestS3KV(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		BaseEndpoint:               aws.String(srv.URL),
		Credentials:                testCredentials,
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})

	exerciseKeyValueStore(t, NewS3KV(client, "moap", "state/"))

	t.Run("object layout", func(t *testing.T) {
		require.NoError(t, NewS3KV(client, "moap", "state/").Put(context.Background(), "moap_user", []byte(`{"id":"1"}`)))

		fake.mu.Lock()
		stored, ok := fake.objects["/moap/state/moap_user.json"]
		fake.mu.Unlock()
		require.True(t, ok)
		assert.JSONEq(t, `{"id":"1"}`, string(stored))
	})

	t.Run("other errors are not treated as absent", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `<Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
		}))
		defer broken.Close()

		c := s3.New(s3.Options{
			Region:       "us-east-1",
			BaseEndpoint: aws.String(broken.URL),
			Credentials:  testCredentials,
			UsePathStyle: true,
		})
		_, found, err := NewS3KV(c, "moap", "").Get(context.Background(), "moap_data")
		assert.Error(t, err)
		assert.False(t, found)
	})
}
