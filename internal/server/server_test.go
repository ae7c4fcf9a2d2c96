package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/guidekit/pkg/cache"
	gkerrors "github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/pipeline"
)

const tomlDoc = `
width = 100
height = 100

[[axis]]
id = "ring"
type = "circle"
center = [50, 50]
radius = 30
ticks = [{ value = 0, name = "0" }, { value = 0.5, name = "180" }]
`

const jsonDoc = `{
  "width": 100,
  "height": 40,
  "axis": [
    {"id": "x", "type": "line", "start": [10, 20], "end": [90, 20],
     "ticks": [{"value": 0, "name": "a"}, {"value": 1, "name": "b"}]}
  ]
}`

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(New(pipeline.NewRunner(fc, nil, logger), logger, opts...).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, query, contentType, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/render"+query, contentType, strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
	if _, err := uuid.Parse(resp.Header.Get("X-Request-ID")); err != nil {
		t.Errorf("X-Request-ID %q is not a uuid", resp.Header.Get("X-Request-ID"))
	}
}

func TestRequestIDPropagation(t *testing.T) {
	srv := newTestServer(t)
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set("X-Request-ID", id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}
}

func TestRenderSVGCaches(t *testing.T) {
	srv := newTestServer(t)

	first := post(t, srv, "", "application/toml", tomlDoc)
	if first.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", first.StatusCode, readBody(t, first))
	}
	if ct := first.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := first.Header.Get("X-Cache"); got != "miss" {
		t.Errorf("first X-Cache = %q, want miss", got)
	}
	svg := readBody(t, first)
	if !strings.Contains(svg, "<svg") {
		t.Errorf("body is not svg: %q", svg)
	}

	second := post(t, srv, "?format=svg", "application/toml", tomlDoc)
	if got := second.Header.Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
	if readBody(t, second) != svg {
		t.Error("cached svg differs")
	}
}

func TestRenderJSONDocument(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv, "?format=json", "application/json", jsonDoc)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, readBody(t, resp))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var scene map[string]any
	if err := json.Unmarshal([]byte(readBody(t, resp)), &scene); err != nil {
		t.Errorf("response is not JSON: %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		query      string
		body       string
		wantStatus int
		wantCode   gkerrors.Code
	}{
		{"BadFormat", "?format=gif", tomlDoc, http.StatusBadRequest, gkerrors.ErrCodeInvalidFormat},
		{"BadScale", "?format=png&scale=big", tomlDoc, http.StatusBadRequest, gkerrors.ErrCodeInvalidInput},
		{"BadRasterizer", "?format=png&rasterizer=gpu", tomlDoc, http.StatusBadRequest, gkerrors.ErrCodeInvalidInput},
		{"Unparseable", "", "width = [", http.StatusBadRequest, gkerrors.ErrCodeInvalidDocument},
		{"UnknownKey", "", "width = 10\nheight = 10\ncolour = 1\n", http.StatusBadRequest, gkerrors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.query, "application/toml", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var body errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Code != string(tt.wantCode) {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if body.RequestID == "" {
				t.Error("error body lacks request_id")
			}
		})
	}
}

func TestRenderBodyTooLarge(t *testing.T) {
	srv := newTestServer(t, WithMaxBodyBytes(16))
	resp := post(t, srv, "", "application/toml", tomlDoc)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRenderMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/render")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{gkerrors.New(gkerrors.ErrCodeInvalidTick, "nan"), http.StatusBadRequest},
		{gkerrors.New(gkerrors.ErrCodeUnsupported, "no rsvg"), http.StatusUnprocessableEntity},
		{gkerrors.New(gkerrors.ErrCodeRenderFailed, "boom"), http.StatusInternalServerError},
		{context.Canceled, http.StatusServiceUnavailable},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
