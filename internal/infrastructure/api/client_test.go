package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{BaseURL: server.URL + "/api", Secret: "till-secret", Timeout: 2 * time.Second})
	require.NoError(t, err)
	return client
}

func TestClient_GetAttachesHeaders(t *testing.T) {
	seen := make(chan *http.Request, 1)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen <- r
		_, _ = io.WriteString(w, `{"success":true,"data":[]}`)
	})

	_, err := client.Get(context.Background(), "/transactions", url.Values{"branch": {"Pusat"}})
	require.NoError(t, err)
	got := <-seen

	assert.Equal(t, "Bearer till-secret", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.NotEmpty(t, got.Header.Get(RequestIDHeader))
	assert.Equal(t, "/api/transactions", got.URL.Path)
	assert.Equal(t, "Pusat", got.URL.Query().Get("branch"))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    apperror.Kind
		message string
	}{
		{"unauthorized with envelope", 401, `{"success":false,"message":"token expired"}`, apperror.KindUnauthorized, "token expired"},
		{"unauthorized with html", 401, `<html>nope</html>`, apperror.KindUnauthorized, "Unauthorized"},
		{"server message", 400, `{"success":false,"message":"Stok tidak cukup"}`, apperror.KindServer, "Stok tidak cukup"},
		{"server without message", 500, `{"success":false}`, apperror.KindServer, "request failed with status 500"},
		{"non-2xx unparsable", 502, `Bad Gateway`, apperror.KindUnreadableResponse, apperror.UnreadableResponseMessage},
		{"2xx unparsable", 200, `{"success":tru`, apperror.KindUnreadableResponse, apperror.UnreadableResponseMessage},
		{"2xx empty body", 200, ``, apperror.KindUnreadableResponse, apperror.UnreadableResponseMessage},
		{"2xx success false", 200, `{"success":false,"message":"Cabang tidak ditemukan"}`, apperror.KindServer, "Cabang tidak ditemukan"},
		{"2xx without success field", 200, `{"data":[]}`, apperror.KindUnreadableResponse, apperror.UnreadableResponseMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.Get(context.Background(), "/laporan", nil)
			require.Error(t, err)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, tt.kind, appErr.Kind)
			assert.Equal(t, tt.message, appErr.Message)
			assert.Equal(t, tt.status, appErr.Code)
		})
	}
}

func TestClient_NormalizesPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":[],"pagination":{"page":2,"limit":10,"total":20,"totalPages":2,"hasNext":true,"hasPrev":false}}`)
	})

	env, err := client.Get(context.Background(), "/cashlog", nil)
	require.NoError(t, err)
	require.NotNil(t, env.Pagination)
	assert.False(t, env.Pagination.HasNext)
	assert.True(t, env.Pagination.HasPrev)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client, err := NewClient(Options{BaseURL: base, Secret: "s"})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/products", nil)
	assert.True(t, apperror.IsKind(err, apperror.KindNetwork))
}

func TestClient_TimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client, err := NewClient(Options{BaseURL: server.URL, Secret: "s", Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/products", nil)
	assert.True(t, errors.Is(err, apperror.ErrNetwork))
}

func TestClient_SendWithIdempotencyKey(t *testing.T) {
	type captured struct{ key, method, body string }
	seen := make(chan captured, 1)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen <- captured{r.Header.Get(IdempotencyKeyHeader), r.Method, string(b)}
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"trx-1"}}`)
	})

	env, err := client.Send(context.Background(), http.MethodPost, "/transactions", nil, map[string]int{"total": 5000}, WithIdempotencyKey("k-1"))
	require.NoError(t, err)
	assert.True(t, env.HasData())
	got := <-seen
	assert.Equal(t, "k-1", got.key)
	assert.Equal(t, http.MethodPost, got.method)
	assert.JSONEq(t, `{"total":5000}`, got.body)
}

func TestClient_UploadUsesMultipart(t *testing.T) {
	type captured struct{ contentType, fileBody string }
	seen := make(chan captured, 1)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		c := captured{contentType: r.Header.Get("Content-Type")}
		if file, _, err := r.FormFile("file"); err == nil {
			b, _ := io.ReadAll(file)
			c.fileBody = string(b)
		}
		seen <- c
		_, _ = io.WriteString(w, `{"url":"https://cdn/x.jpg"}`)
	})

	raw, err := client.Upload(context.Background(), "/laporan/upload", "file", "nota.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	got := <-seen
	assert.True(t, strings.HasPrefix(got.contentType, "multipart/form-data; boundary="))
	assert.Equal(t, "jpeg-bytes", got.fileBody)
	assert.JSONEq(t, `{"url":"https://cdn/x.jpg"}`, string(raw))
}

func TestNewClient_RequiresSecret(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "http://x"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
