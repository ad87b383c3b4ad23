package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

func equipmentConfig() ResourceConfig {
	return ResourceConfig{
		Name:           "equipment",
		CollectionPath: "/equipment",
	}
}

// TestResourceClient_List_Shapes: голый массив и конверт дают одинаковый
// результат, мусорная форма деградирует до пустого списка
func TestResourceClient_List_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{
			name:     "bare array",
			body:     `[{"_id":"1","name":"Mop"},{"_id":"2","name":"Vacuum"}]`,
			expected: 2,
		},
		{
			name:     "data envelope",
			body:     `{"data":[{"_id":"1","name":"Mop"},{"_id":"2","name":"Vacuum"}]}`,
			expected: 2,
		},
		{
			name:     "empty array",
			body:     `[]`,
			expected: 0,
		},
		{
			name:     "empty envelope",
			body:     `{"data":[]}`,
			expected: 0,
		},
		{
			name:     "unrecognized object",
			body:     `{"message":"hello"}`,
			expected: 0,
		},
		{
			name:     "null body",
			body:     `null`,
			expected: 0,
		},
		{
			name:     "empty body",
			body:     ``,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "GET", r.Method)
				assert.Equal(t, "/equipment", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, &staticTokens{})
			resource := NewResource[models.Equipment](client, equipmentConfig())

			items, err := resource.List(context.Background())
			require.NoError(t, err)
			require.NotNil(t, items, "список никогда не nil")
			assert.Len(t, items, tt.expected)
		})
	}
}

// TestResourceClient_List_CustomPathAndQuery: ListPath может содержать query
func TestResourceClient_List_CustomPathAndQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gallery", r.URL.Path)
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[{"_id":"g1","title":"Office"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{})
	resource := NewResource[models.GalleryImage](client, ResourceConfig{
		Name:           "gallery",
		CollectionPath: "/gallery",
		ListPath:       "/gallery?status=active",
		CreatePath:     "/gallery/create",
	})

	items, err := resource.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Office", items[0].Title)
}

// TestResourceClient_List_HTTPError: не-2xx это ошибка, не пустой список
func TestResourceClient_List_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database down"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{})
	resource := NewResource[models.Equipment](client, equipmentConfig())

	_, err := resource.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database down")
}

// TestResourceClient_Create_JSON проверяет JSON create и декодирование записи
func TestResourceClient_Create_JSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/clients", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Skyline Offices", body["companyName"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"cl-1","companyName":"Skyline Offices"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{})
	resource := NewResource[models.Client](client, ResourceConfig{
		Name:           "clients",
		CollectionPath: "/clients",
	})

	created, err := resource.Create(context.Background(), JSONPayload(map[string]any{
		"companyName": "Skyline Offices",
	}))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "cl-1", created.ID)
}

// TestResourceClient_Create_EnvelopeResponse: запись внутри конверта data
func TestResourceClient_Create_EnvelopeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/service/create", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"created","data":{"_id":"sv-1","title":"Deep Cleaning"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{})
	resource := NewResource[models.Service](client, ResourceConfig{
		Name:           "services",
		CollectionPath: "/service",
		CreatePath:     "/service/create",
	})

	created, err := resource.Create(context.Background(), FormPayload(map[string]string{
		"title": "Deep Cleaning",
	}, nil))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "sv-1", created.ID)
	assert.Equal(t, "Deep Cleaning", created.Title)
}

// TestResourceClient_Update проверяет PUT по id
func TestResourceClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/equipment/eq-7", r.URL.Path)
		_, _ = w.Write([]byte(`{"_id":"eq-7","name":"Renamed"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{})
	resource := NewResource[models.Equipment](client, equipmentConfig())

	updated, err := resource.Update(context.Background(), "eq-7", FormPayload(map[string]string{
		"name": "Renamed",
	}, nil))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Name)
}

// TestResourceClient_Remove проверяет DELETE по id
func TestResourceClient_Remove(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/equipment/eq-7", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{})
	resource := NewResource[models.Equipment](client, equipmentConfig())

	err := resource.Remove(context.Background(), "eq-7")
	require.NoError(t, err)
}

// TestResourceClient_ProtectedWrite_NoToken: привилегированная запись без
// токена не выходит в сеть
func TestResourceClient_ProtectedWrite_NoToken(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{token: ""})
	resource := NewResource[models.Blog](client, ResourceConfig{
		Name:           "blogs",
		CollectionPath: "/blogs",
		Protected:      true,
	})

	_, err := resource.Create(context.Background(), FormPayload(map[string]string{"title": "x"}, nil))
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = resource.Update(context.Background(), "b1", FormPayload(map[string]string{"title": "x"}, nil))
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	err = resource.Remove(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.False(t, requested)
}

// TestDecodeEntity_Unrecognized: неузнаваемый ответ даёт nil без ошибки
func TestDecodeEntity_Unrecognized(t *testing.T) {
	assert.Nil(t, decodeEntity[models.Equipment](nil))
	assert.Nil(t, decodeEntity[models.Equipment](json.RawMessage(`"just a string"`)))

	// Объект без полей записи декодируется в нулевую структуру
	entity := decodeEntity[models.Equipment](json.RawMessage(`{"message":"ok"}`))
	require.NotNil(t, entity)
	assert.Empty(t, entity.ID)
}
