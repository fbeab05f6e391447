package sdamgia

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sdamgia-go/lib/telemetry"

	"github.com/stretchr/testify/require"
)

var testScope = Scope{GiaType: GiaTypeEge, Subject: SubjectMath}

func fixture(t testing.TB, name string) []byte {
	contents, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return contents
}

func newTestClient(t testing.TB, handler http.Handler, opts ClientOptions) (*Client, *httptest.Server) {
	cleanup := telemetry.SetupForTesting("test:sdamgia")
	t.Cleanup(cleanup)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts.BaseUrl = server.URL
	client, err := NewClient(opts)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client, server
}

func listingHTML(ids ...int64) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, id := range ids {
		fmt.Fprintf(&b, `<span class="prob_nums"><a href="/problem?id=%d">%d</a></span>`, id, id)
	}
	b.WriteString("</body></html>")
	return b.String()
}
