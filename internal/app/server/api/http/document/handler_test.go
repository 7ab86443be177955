package document

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/docindex"
	"vaultkeeper/internal/domain/document"
	"vaultkeeper/internal/domain/record"
)

type MockDocuments struct {
	mock.Mock
}

func (m *MockDocuments) Add(ctx context.Context, doc document.Document) (*document.Document, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockDocuments) Get(ctx context.Context, id string) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockDocuments) List(ctx context.Context) ([]document.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockDocuments) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockIndex struct {
	mock.Mock
}

func (m *MockIndex) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockIndex) RebuildAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockIndex) UpdateForEntity(ctx context.Context, entityID string, records []record.Record) error {
	return m.Called(ctx, entityID, records).Error(0)
}

func (m *MockIndex) Lookup(ctx context.Context, documentID string) ([]docindex.Ref, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docindex.Ref), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_add(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{name: "stored"},
		{name: "blank uri", svcErr: document.ErrInvalidURI, wantStatus: http.StatusUnprocessableEntity},
		{name: "storage failure", svcErr: errors.New("io"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := new(MockDocuments)
			in := document.Document{URI: "file:///a.pdf"}
			if tt.svcErr != nil {
				docs.On("Add", mock.Anything, in).Return(nil, tt.svcErr)
			} else {
				docs.On("Add", mock.Anything, in).Return(&document.Document{ID: "doc_1", URI: "file:///a.pdf"}, nil)
			}

			h := NewHandler(docs, new(MockIndex), slog.Default(), huma.Middlewares{})
			out, err := h.add(context.Background(), &addInput{Body: addRequest{URI: "file:///a.pdf"}})

			if tt.svcErr != nil {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "doc_1", out.Body.ID)
		})
	}
}

func TestHandler_find(t *testing.T) {
	docs := new(MockDocuments)
	docs.On("Get", mock.Anything, "missing").Return(nil, nil)

	h := NewHandler(docs, new(MockIndex), slog.Default(), huma.Middlewares{})
	_, err := h.find(context.Background(), &idInput{ID: "missing"})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestHandler_Routes(t *testing.T) {
	docs := new(MockDocuments)
	index := new(MockIndex)
	refs := []docindex.Ref{{EntityID: "e_1", RecordID: "r_1", RecordType: "PASSPORT", Title: "Passport"}}
	index.On("Lookup", mock.Anything, "doc_1").Return(refs, nil)
	index.On("Lookup", mock.Anything, "doc_2").Return([]docindex.Ref{}, nil)
	index.On("RebuildAll", mock.Anything).Return(nil)

	_, api := humatest.New(t)
	NewHandler(docs, index, slog.Default(), huma.Middlewares{}).SetupRoutes(api)

	resp := api.Get("/api/documents/doc_1/records")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"recordId":"r_1"`)

	resp = api.Get("/api/documents/doc_2/records")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = api.Post("/api/document-index/rebuild")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/api/documents", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	index.AssertExpectations(t)
	docs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
