package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockds "github.com/PopovMP/html-ast/docstore/mock"
	"github.com/PopovMP/html-ast/dom"
)

func TestParseHTML(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: `{"html": "<div><p>hello</p></div>"}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp parseHTMLResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))

				require.Equal(t, dom.NodeDocument, resp.Document.Type)
				require.Len(t, resp.Document.Children, 1)
				require.Equal(t, "div", resp.Document.Children[0].Tag)
			},
		},
		{
			name: "MissingHTMLField",
			body: `{}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Contains(t, resp.Error, "html")
			},
		},
		{
			name: "InvalidJSON",
			body: `{not json`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "UnknownTag",
			body: `{"html": "<bogus></bogus>"}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Contains(t, resp.Error, "unknown tag name")
			},
		},
		{
			name: "UnterminatedMarkup",
			body: `{"html": "<div class=\"open"}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Contains(t, resp.Error, "unexpected end of input")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storeCtrl := gomock.NewController(t)
			defer storeCtrl.Finish()
			store := mockds.NewMockStore(storeCtrl)

			service := newTestService(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodPost, ParseURL, strings.NewReader(tc.body))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestParseHTML_Deterministic(t *testing.T) {
	storeCtrl := gomock.NewController(t)
	defer storeCtrl.Finish()
	store := mockds.NewMockStore(storeCtrl)

	service := newTestService(t, store)
	body := `{"html": "<div id=\"x\"><p>a<p>b</div>"}`

	var bodies [][]byte
	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodPost, ParseURL, strings.NewReader(body))
		require.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")

		service.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)
		bodies = append(bodies, recorder.Body.Bytes())
	}

	require.True(t, bytes.Equal(bodies[0], bodies[1]))
}
