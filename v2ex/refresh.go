package v2ex

import (
	"log"
	"sync"

	"github.com/zvonler/vex/model"
)

// Refresher runs fetch-and-extract cycles in the background and hands
// each fresh topic list to a single consumer through a one-slot channel.
// A newer list supersedes an older one nobody claimed; a failed cycle
// delivers nothing, leaving the consumer on its current list.
type Refresher struct {
	fetcher *Fetcher
	results chan []model.Topic

	mtx      sync.Mutex
	inFlight bool
}

func NewRefresher(fetcher *Fetcher) *Refresher {
	r := new(Refresher)
	r.fetcher = fetcher
	r.results = make(chan []model.Topic, 1)
	return r
}

// Refresh starts one background cycle for pageNum. Returns false without
// doing anything when a cycle is still running.
func (r *Refresher) Refresh(pageNum int) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.inFlight {
		return false
	}
	r.inFlight = true

	go func() {
		if topics, err := r.fetcher.FetchAndExtract(pageNum); err != nil {
			log.Printf("Refreshing listing page %d failed: %v", pageNum, err)
		} else {
			r.deliver(topics)
		}

		r.mtx.Lock()
		r.inFlight = false
		r.mtx.Unlock()
	}()
	return true
}

// Poll hands over a completed cycle's topic list without blocking. The
// second return is false when no cycle has finished since the last take.
func (r *Refresher) Poll() ([]model.Topic, bool) {
	select {
	case topics := <-r.results:
		return topics, true
	default:
		return nil, false
	}
}

func (r *Refresher) InFlight() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.inFlight
}

// deliver runs on the cycle goroutine while inFlight still holds, so no
// second producer can interleave. If the slot still holds an unclaimed
// list the fresh one replaces it.
func (r *Refresher) deliver(topics []model.Topic) {
	for {
		select {
		case r.results <- topics:
			return
		default:
		}
		select {
		case <-r.results:
		default:
		}
	}
}
