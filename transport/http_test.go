package transport

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestNewHTTPTransport verifies transport creation with default settings.
func TestNewHTTPTransport(t *testing.T) {
	tr := NewHTTPTransport()
	if tr == nil {
		t.Fatal("NewHTTPTransport returned nil")
	}
	if tr.client == nil {
		t.Error("client is nil")
	}
}

// TestHTTPTransport_WithTimeout verifies timeout configuration.
func TestHTTPTransport_WithTimeout(t *testing.T) {
	timeout := 30 * time.Second
	tr := NewHTTPTransport(WithTimeout(timeout))

	if tr.client.Timeout != timeout {
		t.Errorf("got timeout %v, want %v", tr.client.Timeout, timeout)
	}
}

// TestHTTPTransport_WithInsecureSkipVerify verifies TLS skip verify configuration.
func TestHTTPTransport_WithInsecureSkipVerify(t *testing.T) {
	tr := NewHTTPTransport(WithInsecureSkipVerify(true))

	httpTransport, ok := tr.client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("transport is not *http.Transport")
	}
	if httpTransport.TLSClientConfig == nil {
		t.Fatal("TLSClientConfig is nil")
	}
	if !httpTransport.TLSClientConfig.InsecureSkipVerify {
		t.Error("InsecureSkipVerify is false, want true")
	}
}

// TestHTTPTransport_WithTLSConfig verifies custom TLS configuration and the
// TLS 1.2 floor.
func TestHTTPTransport_WithTLSConfig(t *testing.T) {
	tlsCfg := &tls.Config{
		MinVersion: tls.VersionTLS10,
	}
	tr := NewHTTPTransport(WithTLSConfig(tlsCfg))

	httpTransport, ok := tr.client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("transport is not *http.Transport")
	}
	if httpTransport.TLSClientConfig != tlsCfg {
		t.Error("TLSClientConfig does not match provided config")
	}
	if httpTransport.TLSClientConfig.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %d, want TLS 1.2 enforced", httpTransport.TLSClientConfig.MinVersion)
	}
}

// TestHTTPTransport_WithProxy verifies proxy configuration.
func TestHTTPTransport_WithProxy(t *testing.T) {
	tests := []struct {
		name     string
		proxyURL string
	}{
		{"empty uses defaults", ""},
		{"direct bypasses proxy", "direct"},
		{"explicit proxy URL", "http://proxy.example.com:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewHTTPTransport(WithProxy(tt.proxyURL))

			httpTransport, ok := tr.client.Transport.(*http.Transport)
			if !ok {
				t.Fatal("transport is not *http.Transport")
			}

			if tt.proxyURL == "direct" {
				if httpTransport.Proxy != nil {
					t.Error("expected Proxy to be nil for 'direct'")
				}
			} else if tt.proxyURL != "" {
				if httpTransport.Proxy == nil {
					t.Error("expected Proxy to be set for explicit URL")
				}
			}
		})
	}
}

// TestHTTPTransport_Do verifies basic request execution with a JSON body.
func TestHTTPTransport_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != ContentTypeJSON {
			t.Errorf("unexpected Content-Type: %s", ct)
		}
		if accept := r.Header.Get("Accept"); accept != ContentTypeJSON {
			t.Errorf("unexpected Accept: %s", accept)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("unexpected Authorization: %s", auth)
		}

		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("body is not JSON: %s", body)
		}
		if payload["EndpointId"] != "ep-1" {
			t.Errorf("unexpected body: %s", body)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport()
	header := http.Header{}
	header.Set("Authorization", "Bearer test-token")

	resp, err := tr.Do(context.Background(), http.MethodPost, server.URL, map[string]string{"EndpointId": "ep-1"}, header)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if !resp.OK() {
		t.Errorf("status = %d, want 2xx", resp.StatusCode)
	}
	if !strings.Contains(string(resp.Body), "ok") {
		t.Errorf("unexpected response: %s", resp.Body)
	}
}

// TestHTTPTransport_Do_ErrorStatus verifies that HTTP error statuses are
// returned as responses, not as errors. Classification belongs to the
// executor.
func TestHTTPTransport_Do_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"Code":404,"Message":"no such endpoint"}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport()
	resp, err := tr.Do(context.Background(), http.MethodGet, server.URL, nil, nil)
	if err != nil {
		t.Fatalf("Do returned error for HTTP error status: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if resp.OK() {
		t.Error("OK() = true for 404")
	}
}

// TestHTTPTransport_Do_WithContext verifies context cancellation.
func TestHTTPTransport_Do_WithContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tr := NewHTTPTransport()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := tr.Do(ctx, http.MethodGet, server.URL, nil, nil)
	if err == nil {
		t.Error("expected context deadline exceeded error")
	}
}

// TestHTTPTransport_Do_TransportFailure verifies error handling when no
// server response exists.
func TestHTTPTransport_Do_TransportFailure(t *testing.T) {
	tr := NewHTTPTransport()

	_, err := tr.Do(context.Background(), http.MethodGet, "http://localhost:1", nil, nil)
	if err == nil {
		t.Error("expected connection error")
	}
}

// TestHTTPTransport_Do_NoBody verifies that GET requests omit Content-Type.
func TestHTTPTransport_Do_NoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("unexpected Content-Type on bodyless request: %s", ct)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tr := NewHTTPTransport()
	if _, err := tr.Do(context.Background(), http.MethodGet, server.URL, nil, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}
