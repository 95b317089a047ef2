package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sangam0207/SpeakDo-Task-Tracker/ecode"
)

func TestSuccessWithData(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]string{"title": "buy milk"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["title"] != "buy milk" {
		t.Fatalf("expected data passed through unwrapped, got %v", body)
	}
}

func TestSuccessWithoutData(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "ok" {
		t.Fatalf("expected ok message, got %v", body)
	}
}

func TestWithStatusCode(t *testing.T) {
	w := httptest.NewRecorder()
	WithStatusCode(w, http.StatusCreated, map[string]string{"id": "1"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestWithStatusCodeNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	WithStatusCode(w, http.StatusNoContent)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("204 must not carry a body, got %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "" {
		t.Fatalf("204 must not declare a content type, got %q", ct)
	}
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, NotFound("task not found"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var e Exception
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Code != ecode.NothingFound {
		t.Fatalf("expected code %d, got %d", ecode.NothingFound, e.Code)
	}
	if e.Message != "task not found" {
		t.Fatalf("unexpected message %q", e.Message)
	}
	if e.Status != 0 {
		t.Fatalf("status must not leak into the body, got %d", e.Status)
	}
}

func TestFailNil(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var e Exception
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Code != ecode.ServerErr {
		t.Fatalf("expected code %d, got %d", ecode.ServerErr, e.Code)
	}
}

func TestFailDefaultsMessageFromCode(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, &Exception{Status: http.StatusBadRequest, Code: ecode.RequestErr})

	var e Exception
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Message != ecode.Text(ecode.RequestErr) {
		t.Fatalf("expected registered text, got %q", e.Message)
	}
}
