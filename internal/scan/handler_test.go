package scan

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/AllanGabay/vitadex/internal/auth"
	apperrors "github.com/AllanGabay/vitadex/internal/errors"
	"github.com/AllanGabay/vitadex/pkg/models"
)

func scanRouter(t *testing.T, ext *fakeExtractor, gen *fakeGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set(auth.CtxClaimsKey, &auth.Claims{UserID: "user-1", Username: "allan"})
		c.Next()
	})
	NewHandler(NewPipeline(ext, gen, testCardRepo(t)), nil).RegisterRoutes(api)
	return r
}

func postScanJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScanRejectsMissingParameters(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no coordinates", `{"textDescription": "un renard roux"}`},
		{"no latitude", `{"textDescription": "un renard roux", "longitude": 2.35}`},
		{"no input", `{"latitude": 48.85, "longitude": 2.35}`},
		{"both inputs", `{"imageBase64": "aGk=", "textDescription": "un renard", "latitude": 48.85, "longitude": 2.35}`},
		{"bad base64", `{"imageBase64": "not-base64!!", "latitude": 48.85, "longitude": 2.35}`},
		{"bad json", `{"latitude": `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ext := &fakeExtractor{ext: renardRoux()}
			gen := &fakeGenerator{}
			w := postScanJSON(scanRouter(t, ext, gen), tc.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, w.Body.String(), "error")
			require.Zero(t, ext.calls, "rejected request must not reach the model")
			require.Zero(t, gen.callCount())
		})
	}
}

func TestScanRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewPipeline(&fakeExtractor{ext: renardRoux()}, &fakeGenerator{}, testCardRepo(t)), nil).RegisterRoutes(api)

	w := postScanJSON(r, `{"textDescription": "un renard", "latitude": 48.85, "longitude": 2.35}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScanImageRequestReturnsCard(t *testing.T) {
	jpeg := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff, 0xe0})
	body, err := json.Marshal(map[string]any{
		"imageBase64": jpeg,
		"latitude":    48.85,
		"longitude":   2.35,
	})
	require.NoError(t, err)

	ext := &fakeExtractor{ext: renardRoux()}
	gen := &fakeGenerator{}
	r := scanRouter(t, ext, gen)

	w := postScanJSON(r, string(body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID       string                 `json:"id"`
		Cached   bool                   `json:"cached"`
		Metadata models.SpeciesMetadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "renard-roux_Europe", resp.ID)
	require.False(t, resp.Cached)
	require.Equal(t, "Renard roux", resp.Metadata.CommonName)
	require.Len(t, resp.Metadata.Traits, models.TraitCount)
	require.Equal(t, 2, gen.callCount())

	// Same species again: served from the store, no extra generation.
	w = postScanJSON(r, string(body))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "renard-roux_Europe", resp.ID)
	require.True(t, resp.Cached)
	require.Equal(t, 2, gen.callCount())
}

func TestScanMultipartTextDescription(t *testing.T) {
	var buf bytes.Buffer
	mw := newMultipartBody(t, &buf, map[string]string{
		"textDescription": "un grand oiseau gris au bord de l'eau",
		"latitude":        "45.50",
		"longitude":       "-73.57",
	})

	ext := &fakeExtractor{ext: renardRoux()}
	r := scanRouter(t, ext, &fakeGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/scan", &buf)
	req.Header.Set("Content-Type", mw)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, ext.calls)
}

func TestScanMalformedExtractionIsServerError(t *testing.T) {
	ext := &fakeExtractor{err: apperrors.NewExtractionMalformed(errors.New("unknown category"))}
	gen := &fakeGenerator{}
	w := postScanJSON(scanRouter(t, ext, gen), `{"textDescription": "un renard", "latitude": 48.85, "longitude": 2.35}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Zero(t, gen.callCount())
}

func newMultipartBody(t *testing.T, buf *bytes.Buffer, fields map[string]string) string {
	t.Helper()
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return mw.FormDataContentType()
}
