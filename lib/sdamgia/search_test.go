package sdamgia

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		// past the last page the site keeps serving it again
		switch r.URL.Query().Get("page") {
		case "1":
			io.WriteString(w, listingHTML(201, 202))
		default:
			io.WriteString(w, listingHTML(203, 204))
		}
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	ids, err := client.Search(context.Background(), testScope, "производная")
	require.NoError(t, err)
	require.Equal(t, []int64{201, 202, 203, 204}, ids)
}

func TestSearchNoResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body></body></html>")
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	ids, err := client.Search(context.Background(), testScope, "нет такого")
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestGetTheme(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			io.WriteString(w, listingHTML(301, 302, 303))
			return
		}
		io.WriteString(w, "<html><body></body></html>")
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	ids, err := client.GetTheme(context.Background(), testScope, 175)
	require.NoError(t, err)
	require.Equal(t, []int64{301, 302, 303}, ids)
}

func TestRandomProblem(t *testing.T) {
	page := fixture(t, "problem_27902.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			io.WriteString(w, listingHTML(27902))
			return
		}
		io.WriteString(w, "<html><body></body></html>")
	})
	mux.HandleFunc("/problem", func(w http.ResponseWriter, r *http.Request) {
		w.Write(page)
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	problem, err := client.RandomProblem(context.Background(), testScope, 175)
	require.NoError(t, err)
	require.Equal(t, int64(27902), problem.Id)
}

func TestRandomProblemEmptyTheme(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body></body></html>")
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	_, err := client.RandomProblem(context.Background(), testScope, 175)
	require.ErrorContains(t, err, "has no problems")
}
