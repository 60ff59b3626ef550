package v2ex

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func listingServer(t *testing.T, body string) (*httptest.Server, func() []string) {
	var mtx sync.Mutex
	requests := []string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mtx.Lock()
		requests = append(requests, r.URL.String())
		mtx.Unlock()
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	recorded := func() []string {
		mtx.Lock()
		defer mtx.Unlock()
		return append([]string{}, requests...)
	}
	return server, recorded
}

func testFetcher(baseURL string) *Fetcher {
	fetcher := NewFetcher()
	fetcher.BaseURL = baseURL
	fetcher.Timeout = 5 * time.Second
	return fetcher
}

func TestFetchPage(t *testing.T) {
	server, recorded := listingServer(t, listingPage)

	fetcher := testFetcher(server.URL)
	page, err := fetcher.FetchPage(2)
	require.Equal(t, nil, err)
	require.Equal(t, listingPage, page)
	require.Equal(t, []string{"/?p=2"}, recorded())
}

func TestFetchAndExtract(t *testing.T) {
	server, _ := listingServer(t, listingPage)

	fetcher := testFetcher(server.URL)
	topics, err := fetcher.FetchAndExtract(1)
	require.Equal(t, nil, err)
	require.Equal(t, 3, len(topics))
	require.Equal(t, "Go 1.21 正式发布", topics[0].Title)
}

func TestFetchPageTransportError(t *testing.T) {
	server, _ := listingServer(t, listingPage)
	server.Close()

	fetcher := testFetcher(server.URL)
	_, err := fetcher.FetchPage(1)
	require.True(t, errors.Is(err, ErrTransport))
}

func TestFetchPageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	fetcher := testFetcher(server.URL)
	_, err := fetcher.FetchPage(1)
	require.True(t, errors.Is(err, ErrTransport))
}

func TestFetchPageInvalidEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declares UTF-8 but delivers bytes that are not
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	t.Cleanup(server.Close)

	fetcher := testFetcher(server.URL)
	_, err := fetcher.FetchPage(1)
	require.True(t, errors.Is(err, ErrDecode))
}

func TestFetchPageBadProxy(t *testing.T) {
	server, _ := listingServer(t, listingPage)

	fetcher := testFetcher(server.URL)
	fetcher.Proxy = "://not-a-proxy"
	_, err := fetcher.FetchPage(1)
	require.True(t, errors.Is(err, ErrTransport))
}
