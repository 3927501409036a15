package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PopovMP/html-ast/docstore"
	mockds "github.com/PopovMP/html-ast/docstore/mock"
	"github.com/PopovMP/html-ast/dom"
)

func storedTestDocument(t *testing.T, html string) *docstore.StoredDocument {
	t.Helper()

	root, err := dom.Parse(html)
	require.NoError(t, err)

	return &docstore.StoredDocument{
		HTML:      html,
		Root:      root,
		CreatedAt: time.Now(),
	}
}

func TestGetDocument(t *testing.T) {
	docID := "abc123def456"
	doc := storedTestDocument(t, `<div id="main"><p>hello</p></div>`)

	testCases := []struct {
		name          string
		id            string
		buildStubs    func(store *mockds.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			id:   docID,
			buildStubs: func(store *mockds.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), docID).Times(1).Return(doc, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp getDocumentResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))

				require.Equal(t, docID, resp.ID)
				require.Equal(t, doc.HTML, resp.HTML)
				require.Equal(t, doc.Root, resp.Document)
			},
		},
		{
			name: "NotFound",
			id:   docID,
			buildStubs: func(store *mockds.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), docID).Times(1).Return(nil, docstore.ErrNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "StoreError",
			id:   docID,
			buildStubs: func(store *mockds.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), docID).Times(1).Return(nil, errors.New("redis is down"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storeCtrl := gomock.NewController(t)
			defer storeCtrl.Finish()
			store := mockds.NewMockStore(storeCtrl)

			tc.buildStubs(store)

			service := newTestService(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/documents/"+tc.id, nil)
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestDeleteDocument(t *testing.T) {
	docID := "abc123def456"

	testCases := []struct {
		name          string
		buildStubs    func(store *mockds.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockds.MockStore) {
				store.EXPECT().DeleteDocument(gomock.Any(), docID).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNoContent, recorder.Code)
			},
		},
		{
			name: "StoreError",
			buildStubs: func(store *mockds.MockStore) {
				store.EXPECT().DeleteDocument(gomock.Any(), docID).Times(1).Return(errors.New("redis is down"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storeCtrl := gomock.NewController(t)
			defer storeCtrl.Finish()
			store := mockds.NewMockStore(storeCtrl)

			tc.buildStubs(store)

			service := newTestService(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodDelete, "/documents/"+docID, nil)
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
