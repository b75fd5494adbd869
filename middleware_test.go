package main

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/johnretsas/portfolio/internal/config"
	"github.com/johnretsas/portfolio/internal/site"
)

func newTestVisitLog(t *testing.T) (*visitLog, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	v, err := newVisitLog(log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	return v, &buf
}

func TestHashIP(t *testing.T) {
	v, _ := newTestVisitLog(t)
	a := v.hashIP("203.0.113.7")
	if len(a) != 16 {
		t.Fatalf("hash length = %d, want 16", len(a))
	}
	if a != v.hashIP("203.0.113.7") {
		t.Error("hash is not stable for one address")
	}
	if a == v.hashIP("203.0.113.8") {
		t.Error("different addresses share a hash")
	}

	other, _ := newTestVisitLog(t)
	if a == other.hashIP("203.0.113.7") {
		t.Error("salt does not change the hash")
	}
}

func TestVisitLog(t *testing.T) {
	v, buf := newTestVisitLog(t)
	r := testEngine(t, site.URLs{}, config.UnknownPostNotFound, v)

	req := httptest.NewRequest(http.MethodGet, "/blog/going-to-mars", nil)
	req.RemoteAddr = "203.0.113.7:4321"
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	for _, want := range []string{"GET /blog/going-to-mars 200", "page=blog-post", "visitor=" + v.hashIP("203.0.113.7")} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q does not contain %q", line, want)
		}
	}
	if strings.Contains(line, "203.0.113.7") {
		t.Errorf("log line contains the raw address: %q", line)
	}
}

func TestVisitLogRespectsDNT(t *testing.T) {
	v, buf := newTestVisitLog(t)
	r := testEngine(t, site.URLs{}, config.UnknownPostNotFound, v)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "visitor=-") {
		t.Errorf("DNT request was fingerprinted: %q", buf.String())
	}
}

func TestVisitLogSkipsAssets(t *testing.T) {
	v, buf := newTestVisitLog(t)
	r := testEngine(t, site.URLs{}, config.UnknownPostNotFound, v)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	if buf.Len() != 0 {
		t.Errorf("asset request was logged: %q", buf.String())
	}
}

func TestRequestID(t *testing.T) {
	r := testEngine(t, site.URLs{}, config.UnknownPostNotFound, nil)

	rr := get(t, r, http.MethodGet, "/")
	id := rr.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id %q: %v", id, err)
	}

	keep := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, keep)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if got := rr.Header().Get(requestIDHeader); got != keep {
		t.Errorf("id = %q, want incoming %q", got, keep)
	}

	req.Header.Set(requestIDHeader, "not-a-uuid")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if got := rr.Header().Get(requestIDHeader); got == "not-a-uuid" {
		t.Error("invalid incoming id was kept")
	}
}
