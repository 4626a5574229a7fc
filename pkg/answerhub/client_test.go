package answerhub

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient_NormalizesBaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "https://qa.example.com", "https://qa.example.com/"},
		{"trailing slash kept", "https://qa.example.com/", "https://qa.example.com/"},
		{"with path", "https://example.com/qa", "https://example.com/qa/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.in, "user", "pass")
			if c.baseURL != tt.want {
				t.Errorf("baseURL = %q, want %q", c.baseURL, tt.want)
			}

			// Normalization is idempotent: constructing from the already
			// normalized URL yields the same result.
			c2 := NewClient(c.baseURL, "user", "pass")
			if c2.baseURL != tt.want {
				t.Errorf("re-normalized baseURL = %q, want %q", c2.baseURL, tt.want)
			}
		})
	}
}

func TestNewClient_CredentialRoundTrip(t *testing.T) {
	tests := []struct {
		username string
		password string
	}{
		{"admin", "hunter2"},
		{"user@example.com", "p4ss:word"},
		{"", ""},
		{"ümläut", "пароль"},
	}

	for _, tt := range tests {
		c := NewClient("https://qa.example.com", tt.username, tt.password)

		encoded := strings.TrimPrefix(c.authorization, "Basic ")
		if encoded == c.authorization {
			t.Fatalf("authorization %q lacks Basic prefix", c.authorization)
		}

		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			t.Fatalf("credential did not decode: %v", err)
		}
		if want := tt.username + ":" + tt.password; string(decoded) != want {
			t.Errorf("credential decodes to %q, want %q", decoded, want)
		}
	}
}

func TestListQuestions_RequestShape(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	var gotHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotHeaders = r.Header.Clone()
		fmt.Fprint(w, `{"list":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	if _, err := c.ListQuestions(context.Background(), 1, "active"); err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST (platform expects POST for reads)", gotMethod)
	}
	if want := "/services/v2/question.json"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if want := "page=1&sort=active"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	if got := gotHeaders.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want application/json", got)
	}
	if got := gotHeaders.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if got := gotHeaders.Get("Authorization"); !strings.HasPrefix(got, "Basic ") {
		t.Errorf("Authorization = %q, want Basic credential", got)
	}
}

func TestListQuestions_Defaults(t *testing.T) {
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"list":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	if _, err := c.ListQuestions(context.Background(), 0, ""); err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}

	if want := "page=1&sort=active"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestListQuestions_SortForwardedVerbatim(t *testing.T) {
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"list":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	if _, err := c.ListQuestions(context.Background(), 3, "hottest"); err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}

	if want := "page=3&sort=hottest"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestListQuestions_DecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"list":[
			{"id":101,"type":"question","creationDate":1700000000000,"title":"How do I reset my password?",
			 "body":"raw","bodyAsHTML":"<p>raw</p>","author":{"id":7,"username":"alice"},
			 "activeRevisionId":201,"parentId":0,"originalParentId":0,"slug":"how-do-i-reset-my-password"},
			{"id":102,"type":"question","creationDate":1700000001000,"title":"Second","author":{"id":8,"username":"bob"}}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	page, err := c.ListQuestions(context.Background(), 1, "active")
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}

	if len(page.List) != 2 {
		t.Fatalf("len(List) = %d, want 2", len(page.List))
	}
	q := page.List[0]
	if q.ID != 101 {
		t.Errorf("ID = %d, want 101", q.ID)
	}
	if q.Type != "question" {
		t.Errorf("Type = %q, want question", q.Type)
	}
	if q.CreationDate != 1700000000000 {
		t.Errorf("CreationDate = %d, want 1700000000000", q.CreationDate)
	}
	if q.Author.Username != "alice" {
		t.Errorf("Author.Username = %q, want alice", q.Author.Username)
	}
	if q.Slug != "how-do-i-reset-my-password" {
		t.Errorf("Slug = %q", q.Slug)
	}
}

func TestGetAccessors_Paths(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"id":42}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	ctx := context.Background()

	calls := []struct {
		name string
		call func() error
		want string
	}{
		{"question", func() error { _, err := c.GetQuestion(ctx, 42); return err }, "/services/v2/question/42.json"},
		{"answer", func() error { _, err := c.GetAnswer(ctx, 42); return err }, "/services/v2/answer/42.json"},
		{"comment", func() error { _, err := c.GetComment(ctx, 42); return err }, "/services/v2/comment/42.json"},
		{"article", func() error { _, err := c.GetArticle(ctx, 42); return err }, "/services/v2/article/42.json"},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("accessor failed: %v", err)
			}
			if gotPath != tt.want {
				t.Errorf("path = %q, want %q", gotPath, tt.want)
			}
		})
	}
}

func TestDo_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	_, err := c.GetQuestion(context.Background(), 9999)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var statusErr *UnexpectedStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %T (%v), want *UnexpectedStatusError", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
}

func TestDo_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	_, err := c.ListAnswers(context.Background(), 1, "active")
	if err == nil {
		t.Fatal("expected error for non-JSON body")
	}

	var malformedErr *MalformedResponseError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("error = %T (%v), want *MalformedResponseError", err, err)
	}
	if malformedErr.Err == nil {
		t.Error("parse cause not preserved")
	}
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "user", "pass")
	_, err := c.ListComments(context.Background(), 1, "active")
	if err == nil {
		t.Fatal("expected error for refused connection")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %T (%v), want *TransportError", err, err)
	}
	if transportErr.Err == nil {
		t.Error("underlying cause not preserved")
	}
}

func TestDo_FollowsRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/moved/services/v2/question/1.json" {
			fmt.Fprint(w, `{"id":1,"type":"question"}`)
			return
		}
		http.Redirect(w, r, "/moved"+r.URL.Path, http.StatusTemporaryRedirect)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	q, err := c.GetQuestion(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}
	if q.ID != 1 {
		t.Errorf("ID = %d, want 1", q.ID)
	}
}

func TestDo_UnknownFieldsPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extra fields and missing fields are both tolerated: no schema
		// validation beyond JSON well-formedness.
		fmt.Fprint(w, `{"id":5,"unknownField":true,"another":{"nested":1}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user", "pass")
	a, err := c.GetAnswer(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetAnswer failed: %v", err)
	}
	if a.ID != 5 {
		t.Errorf("ID = %d, want 5", a.ID)
	}
	if a.Title != "" {
		t.Errorf("Title = %q, want zero value for missing field", a.Title)
	}
}
