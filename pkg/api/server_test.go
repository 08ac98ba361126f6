package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai_device/pkg/device"
	"ai_device/pkg/models"

	"github.com/gin-gonic/gin"
)

type stubRunner struct {
	got []string
}

func (s *stubRunner) Handle(rawText string) string {
	s.got = append(s.got, rawText)
	return "Włączam LED ✅"
}

type stubState struct{ st device.State }

func (s stubState) State() device.State { return s.st }

func newTestServer() (*Server, *stubRunner) {
	gin.SetMode(gin.TestMode)
	runner := &stubRunner{}
	state := stubState{device.State{LED: true, Frame: device.Frame{Line1: "LED: ON"}}}
	s := NewServer(runner, state, device.LinkFunc(func() bool { return true }), func() string { return "ESP32-AABBCCDDEEFF" })
	return s, runner
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestCommandEndpoint(t *testing.T) {
	s, runner := newTestServer()
	w := serve(s, httptest.NewRequest(http.MethodGet, "/cmd?text=led+on", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Expected plain text, got %q", w.Header().Get("Content-Type"))
	}
	if w.Body.String() != "Włączam LED ✅" {
		t.Errorf("Unexpected body %q", w.Body.String())
	}
	if len(runner.got) != 1 || runner.got[0] != "led on" {
		t.Errorf("Expected decoded text to be forwarded, got %v", runner.got)
	}
}

func TestCommandEndpointEmptyTextIsForwarded(t *testing.T) {
	s, runner := newTestServer()
	w := serve(s, httptest.NewRequest(http.MethodGet, "/cmd?text=", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(runner.got) != 1 || runner.got[0] != "" {
		t.Errorf("Expected empty text to be forwarded, got %v", runner.got)
	}
}

func TestCommandEndpointMissingParam(t *testing.T) {
	s, runner := newTestServer()
	w := serve(s, httptest.NewRequest(http.MethodGet, "/cmd", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if w.Body.String() != "Missing ?text=" {
		t.Errorf("Unexpected body %q", w.Body.String())
	}
	if len(runner.got) != 0 {
		t.Error("Runner must not be called without text")
	}
}

func TestIndexPage(t *testing.T) {
	s, _ := newTestServer()
	w := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/cmd?text=") {
		t.Error("Expected the page to call /cmd")
	}
}

func TestStateEndpoint(t *testing.T) {
	s, _ := newTestServer()
	w := serve(s, httptest.NewRequest(http.MethodGet, "/state", nil))

	var st models.DeviceStatus
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	want := models.DeviceStatus{DeviceID: "ESP32-AABBCCDDEEFF", LED: true, Line1: "LED: ON"}
	if st != want {
		t.Errorf("Expected %+v, got %+v", want, st)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer()
	w := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["connected"] != true {
		t.Errorf("Unexpected health %v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer()
	w := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "device_led_on") {
		t.Error("Expected device metrics to be exported")
	}
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer()
	req := httptest.NewRequest(http.MethodOptions, "/cmd?text=x", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := serve(s, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected CORS header, got %v", w.Header())
	}
}
