package sdamgia

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTest(t *testing.T) {
	page := fixture(t, "test_45.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write(page)
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	test, err := client.GetTest(context.Background(), testScope, 45)
	require.NoError(t, err)
	require.Equal(t, Test{
		GiaType:    testScope.GiaType,
		Subject:    testScope.Subject,
		Id:         45,
		ProblemIds: []int64{101, 102, 103},
	}, test)
}

func TestGetTestEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body></body></html>")
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	_, err := client.GetTest(context.Background(), testScope, 45)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, PageListing, parseErr.Kind)
}

func TestGenerateTest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "generate", r.URL.Query().Get("a"))
		assert.Equal(t, "2", r.URL.Query().Get("prob3"))
		w.Header().Set("Location", "/test?id=777&nt=1")
		w.WriteHeader(http.StatusFound)
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	id, err := client.GenerateTest(context.Background(), testScope, TestProblems{
		Counts: map[int]int{3: 2},
	})
	require.NoError(t, err)
	require.Equal(t, int64(777), id)
}

func TestGenerateTestFromCatalog(t *testing.T) {
	catalog := fixture(t, "catalog.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/prob_catalog", func(w http.ResponseWriter, r *http.Request) {
		w.Write(catalog)
	})
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		// one problem per catalog topic
		assert.Equal(t, "1", r.URL.Query().Get("prob1"))
		assert.Equal(t, "1", r.URL.Query().Get("prob2"))
		w.Header().Set("Location", "/test?id=778&nt=1")
		w.WriteHeader(http.StatusFound)
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	id, err := client.GenerateTest(context.Background(), testScope, TestProblems{})
	require.NoError(t, err)
	require.Equal(t, int64(778), id)
}

func TestGenerateTestWithoutRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body></body></html>")
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	_, err := client.GenerateTest(context.Background(), testScope, TestProblems{
		Counts: map[int]int{1: 1},
	})

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusOK, fetchErr.StatusCode)
}

func TestGeneratePdfLink(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "777", r.URL.Query().Get("id"))
		assert.Equal(t, "true", r.URL.Query().Get("print"))
		assert.Equal(t, string(PdfLargeFont), r.URL.Query().Get("pdf"))
		assert.Equal(t, "true", r.URL.Query().Get("sol"))
		assert.Empty(t, r.URL.Query().Get("ans"))
		w.Header().Set("Location", "/pdf/abcdef.pdf")
		w.WriteHeader(http.StatusFound)
	})
	client, server := newTestClient(t, mux, ClientOptions{})

	link, err := client.GeneratePdfLink(context.Background(), testScope, 777, PdfOptions{
		Variant:   PdfLargeFont,
		Solutions: true,
	})
	require.NoError(t, err)
	require.Equal(t, server.URL+"/pdf/abcdef.pdf", link)
}
