package v2ex

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zvonler/vex/model"
)

const shortListingPage = `<!DOCTYPE html>
<html><body>
<div class="cell item">
  <span class="item_title"><a class="topic-link" href="/t/1#reply0">Fresh</a></span>
  <span class="topic_info">
    <a class="node" href="/go/go">Go</a>
    <strong><a href="/member/erin">erin</a></strong>
    <span title="2023-07-19 08:30:00 +0800">11 小时前</span>
  </span>
</div>
</body></html>`

func awaitTopics(t *testing.T, refresher *Refresher) []model.Topic {
	var topics []model.Topic
	require.Eventually(t, func() bool {
		result, ok := refresher.Poll()
		if ok {
			topics = result
		}
		return ok
	}, 5*time.Second, 10*time.Millisecond)
	return topics
}

func awaitIdle(t *testing.T, refresher *Refresher) {
	require.Eventually(t, func() bool {
		return !refresher.InFlight()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRefreshDeliversOnce(t *testing.T) {
	server, _ := listingServer(t, listingPage)

	refresher := NewRefresher(testFetcher(server.URL))
	require.True(t, refresher.Refresh(1))

	topics := awaitTopics(t, refresher)
	require.Equal(t, 3, len(topics))

	// The slot was claimed, so nothing further arrives
	_, ok := refresher.Poll()
	require.False(t, ok)
	awaitIdle(t, refresher)
}

func TestRefreshFailureDeliversNothing(t *testing.T) {
	server, _ := listingServer(t, listingPage)
	server.Close()

	refresher := NewRefresher(testFetcher(server.URL))
	require.True(t, refresher.Refresh(1))
	awaitIdle(t, refresher)

	_, ok := refresher.Poll()
	require.False(t, ok)
}

func TestRefreshRejectsOverlap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, listingPage)
	}))
	t.Cleanup(server.Close)

	refresher := NewRefresher(testFetcher(server.URL))
	require.True(t, refresher.Refresh(1))
	require.False(t, refresher.Refresh(2))

	topics := awaitTopics(t, refresher)
	require.Equal(t, 3, len(topics))
	awaitIdle(t, refresher)

	require.True(t, refresher.Refresh(2))
	awaitIdle(t, refresher)
}

func TestRefreshSupersedesUnclaimed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("p") == "2" {
			fmt.Fprint(w, shortListingPage)
		} else {
			fmt.Fprint(w, listingPage)
		}
	}))
	t.Cleanup(server.Close)

	refresher := NewRefresher(testFetcher(server.URL))
	require.True(t, refresher.Refresh(1))
	awaitIdle(t, refresher)
	require.True(t, refresher.Refresh(2))
	awaitIdle(t, refresher)

	// Only the newer list is claimable
	topics, ok := refresher.Poll()
	require.True(t, ok)
	require.Equal(t, 1, len(topics))
	require.Equal(t, "Fresh", topics[0].Title)

	_, ok = refresher.Poll()
	require.False(t, ok)
}
