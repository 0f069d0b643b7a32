package opensubtitles

import (
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Belphemur/Subtitler/internal/config"
)

// fakeCatalog is an XML-RPC server answering each method with a canned record.
type fakeCatalog struct {
	t       *testing.T
	mu      sync.Mutex
	calls   []methodCall
	handler func(call methodCall) value
}

func newFakeCatalog(t *testing.T, handler func(call methodCall) value) (*fakeCatalog, *httptest.Server) {
	t.Helper()
	fc := &fakeCatalog{t: t, handler: handler}
	server := httptest.NewServer(fc)
	t.Cleanup(server.Close)
	return fc, server
}

func (fc *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		fc.t.Errorf("Expected POST, got %s", r.Method)
	}
	if ct := r.Header.Get("Content-Type"); ct != "text/xml" {
		fc.t.Errorf("Expected Content-Type text/xml, got %q", ct)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		fc.t.Errorf("Failed to read request body: %v", err)
	}
	var call methodCall
	if err := xml.Unmarshal(body, &call); err != nil {
		fc.t.Errorf("Failed to decode methodCall: %v", err)
	}

	fc.mu.Lock()
	fc.calls = append(fc.calls, call)
	fc.mu.Unlock()

	writeRecord(w, fc.handler(call))
}

func (fc *fakeCatalog) callCount(method string) int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	n := 0
	for _, c := range fc.calls {
		if c.MethodName == method {
			n++
		}
	}
	return n
}

func (fc *fakeCatalog) lastCall() methodCall {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.calls[len(fc.calls)-1]
}

func writeRecord(w http.ResponseWriter, record value) {
	out, err := xml.Marshal(methodResponse{Params: []param{{Value: record}}})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

func loginRecord(status, token string) value {
	return structOf(
		member{Name: "status", Value: stringValue(status)},
		member{Name: "token", Value: stringValue(token)},
		member{Name: "seconds", Value: doubleValue(0)},
	)
}

func subtitleRecord(lang, link string) value {
	return structOf(
		member{Name: "ISO639", Value: stringValue(lang)},
		member{Name: "SubDownloadLink", Value: stringValue(link)},
		member{Name: "SubFileName", Value: stringValue("movie." + lang + ".srt")},
		member{Name: "SubFormat", Value: stringValue("srt")},
	)
}

func searchRecord(status string, records ...value) value {
	return structOf(
		member{Name: "status", Value: stringValue(status)},
		member{Name: "data", Value: arrayOf(records...)},
	)
}

// catalogHandler answers LogIn with a token and SearchSubtitles with search.
func catalogHandler(search value) func(call methodCall) value {
	return func(call methodCall) value {
		if call.MethodName == methodLogIn {
			return loginRecord("200 OK", "tok-123")
		}
		return search
	}
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(&config.Config{
		CatalogURL:    server.URL,
		UserAgent:     "SubtitlerTest",
		Language:      "es",
		ClientTimeout: "10s",
	})
}

func stringParam(t *testing.T, call methodCall, i int) string {
	t.Helper()
	if i >= len(call.Params) {
		t.Fatalf("%s has %d params, wanted index %d", call.MethodName, len(call.Params), i)
	}
	s, ok := call.Params[i].Value.asString()
	if !ok {
		t.Fatalf("%s param %d is not a string", call.MethodName, i)
	}
	return s
}


func boolValue(b bool) value {
	s := "0"
	if b {
		s = "1"
	}
	return value{Boolean: &s}
}

func intField(v value, name string) int {
	f, ok := v.field(name)
	if !ok {
		return -1
	}
	i, ok := f.asInt()
	if !ok {
		return -1
	}
	return i
}
