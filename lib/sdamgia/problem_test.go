package sdamgia

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetProblem(t *testing.T) {
	page := fixture(t, "problem_27902.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/problem", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "27902" {
			http.NotFound(w, r)
			return
		}
		w.Write(page)
	})
	client, server := newTestClient(t, mux, ClientOptions{})

	problem, err := client.GetProblem(context.Background(), testScope, 27902, ProblemOptions{})
	require.NoError(t, err)

	require.Equal(t, int64(27902), problem.Id)
	require.Equal(t, server.URL+"/problem?id=27902", problem.Url)
	require.Equal(t, GiaTypeEge, problem.GiaType)
	require.Equal(t, SubjectMath, problem.Subject)

	require.NotNil(t, problem.TopicId)
	require.Equal(t, int64(7), *problem.TopicId)

	require.NotNil(t, problem.Condition)
	require.Equal(t,
		"На рисунке изображён график функции. Найдите значение производной в точке касания.",
		problem.Condition.Text,
	)
	require.Equal(t, []string{
		server.URL + "/formula/svg/aa.svg",
		server.URL + "/get_file?id=100",
	}, problem.Condition.ImageUrls)
	require.Contains(t, problem.Condition.Html, server.URL+"/formula/svg/aa.svg")

	require.NotNil(t, problem.Solution)
	require.Contains(t, problem.Solution.Text, "тангенсу угла наклона")
	require.Equal(t, []string{server.URL + "/formula/svg/bb.svg"}, problem.Solution.ImageUrls)

	require.NotNil(t, problem.Answer)
	require.Equal(t, "42", *problem.Answer)

	require.Equal(t, []int64{510241, 510242}, problem.AnalogIds)
}

func TestGetProblemDeterministic(t *testing.T) {
	page := fixture(t, "problem_27902.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/problem", func(w http.ResponseWriter, r *http.Request) {
		w.Write(page)
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	first, err := client.GetProblem(context.Background(), testScope, 27902, ProblemOptions{})
	require.NoError(t, err)
	second, err := client.GetProblem(context.Background(), testScope, 27902, ProblemOptions{})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGetProblemWithoutAnswer(t *testing.T) {
	page := fixture(t, "problem_noanswer.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/problem", func(w http.ResponseWriter, r *http.Request) {
		w.Write(page)
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	problem, err := client.GetProblem(context.Background(), testScope, 640001, ProblemOptions{})
	require.NoError(t, err)

	require.Nil(t, problem.Answer, "a missing answer block must leave the field unset")
	require.Nil(t, problem.Solution)
	require.NotNil(t, problem.Condition)
}

func TestGetProblemNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/problem", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	_, err := client.GetProblem(context.Background(), testScope, 1, ProblemOptions{})

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestGetProblemLayoutChanged(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/problem", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><div>nothing here</div></body></html>"))
	})
	client, _ := newTestClient(t, mux, ClientOptions{})

	_, err := client.GetProblem(context.Background(), testScope, 27902, ProblemOptions{})

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, PageProblem, parseErr.Kind)
}

func TestConcurrentGetProblem(t *testing.T) {
	page := fixture(t, "problem_27902.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/problem", func(w http.ResponseWriter, r *http.Request) {
		w.Write(page)
	})
	client, server := newTestClient(t, mux, ClientOptions{})

	const n = 16
	problems := make([]Problem, n)
	errs := make([]error, n)
	wg := sync.WaitGroup{}

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			problems[i], errs[i] = client.GetProblem(
				context.Background(), testScope, 27902, ProblemOptions{},
			)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, int64(27902), problems[i].Id)
		require.Equal(t, server.URL+"/problem?id=27902", problems[i].Url)
		require.NotNil(t, problems[i].Condition)
	}
}

type fakeRecognizer struct{}

func (fakeRecognizer) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	if strings.Contains(string(image), "aa") {
		return "$x^2$", nil
	}
	return "", errors.New("model overloaded")
}

func TestGetProblemRecognizeText(t *testing.T) {
	page := fixture(t, "problem_27902.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/problem", func(w http.ResponseWriter, r *http.Request) {
		w.Write(page)
	})
	mux.HandleFunc("/formula/svg/aa.svg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte("<svg>aa</svg>"))
	})
	mux.HandleFunc("/formula/svg/bb.svg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte("<svg>bb</svg>"))
	})
	client, server := newTestClient(t, mux, ClientOptions{Recognizer: fakeRecognizer{}})

	problem, err := client.GetProblem(
		context.Background(), testScope, 27902, ProblemOptions{RecognizeText: true},
	)
	require.NoError(t, err)

	// the condition formula was recognized and substituted into the text
	require.NotNil(t, problem.Condition)
	require.Contains(t, problem.Condition.Text, "$x^2$")

	// recognition of the solution formula failed, the record survives
	// with the image reference intact and the text untranscribed
	require.NotNil(t, problem.Solution)
	require.NotContains(t, problem.Solution.Text, "$")
	require.Equal(t, []string{server.URL + "/formula/svg/bb.svg"}, problem.Solution.ImageUrls)

	require.Equal(t, []string{
		server.URL + "/formula/svg/aa.svg",
		server.URL + "/get_file?id=100",
	}, problem.Condition.ImageUrls)
}
