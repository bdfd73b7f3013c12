package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quill/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) *mux.Router {
	db := setupTestDB(t)
	cfg := &config.Config{
		DBPath:         "",
		UploadsDir:     t.TempDir(),
		Secret:         "test-secret",
		TokenTTL:       time.Hour,
		FrontendOrigin: "http://localhost:5173",
	}

	router, err := SetupRoutes(db, cfg)
	require.NoError(t, err)
	return router
}

// doJSON performs a JSON request and returns the recorder.
func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doMultipart performs a multipart form request with optional file part.
func doMultipart(t *testing.T, router *mux.Router, method, path string, fields map[string]string, filename, fileContents string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(fileContents))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the token cookie set by a login response.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	res := w.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("no token cookie in response")
	return nil
}

// registerAndLogin creates a user and returns its session cookie.
func registerAndLogin(t *testing.T, router *mux.Router, username, password string) *http.Cookie {
	creds := map[string]string{"username": username, "password": password}

	w := doJSON(t, router, "POST", "/register", creds)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	return sessionCookie(t, w)
}
