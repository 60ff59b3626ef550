package v2ex

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/zvonler/vex/model"
)

var ErrParse = errors.New("listing page is unparseable")

/*---------------------------------------------------------------------------*/

type CandidateStatus int

const (
	// CandidateAccepted means every field extracted and Topic is usable.
	CandidateAccepted CandidateStatus = iota
	// CandidateSkipped means the cell carried the topic marker but no
	// thread link, e.g. an ad or notice block. Not an error.
	CandidateSkipped
	// CandidateRejected means the cell looked like a topic but some field
	// could not be extracted. Err holds the cause.
	CandidateRejected
)

// Candidate is the outcome for one listing cell that carried the topic
// marker class, in document order.
type Candidate struct {
	Index  int
	Status CandidateStatus
	Topic  model.Topic
	Err    error
}

/*---------------------------------------------------------------------------*/

// ScanPage examines every topic candidate on one listing page. The scan
// itself only fails when the page text cannot be parsed at all; individual
// candidates record their own outcome.
func ScanPage(page string) ([]Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	candidates := []Candidate{}
	doc.Find(".cell.item").Each(func(i int, sel *goquery.Selection) {
		candidates = append(candidates, scanCandidate(i, sel))
	})
	return candidates, nil
}

// ExtractTopics returns the displayable topics of one listing page in page
// order. Rejected candidates are logged and dropped rather than failing
// the page, and a page without topic cells yields an empty list.
func ExtractTopics(page string) ([]model.Topic, error) {
	candidates, err := ScanPage(page)
	if err != nil {
		return nil, err
	}

	topics := []model.Topic{}
	for _, cand := range candidates {
		switch cand.Status {
		case CandidateAccepted:
			topics = append(topics, cand.Topic)
		case CandidateRejected:
			log.Printf("Dropping topic candidate %d: %v", cand.Index, cand.Err)
		}
	}
	return topics, nil
}

func scanCandidate(index int, sel *goquery.Selection) Candidate {
	rejected := func(err error) Candidate {
		return Candidate{Index: index, Status: CandidateRejected, Err: err}
	}

	link := sel.Find(".topic-link").First()
	if link.Length() == 0 {
		return Candidate{Index: index, Status: CandidateSkipped}
	}
	href, ok := link.Attr("href")
	if !ok {
		return Candidate{Index: index, Status: CandidateSkipped}
	}

	info := sel.Find(".topic_info").First()
	if info.Length() == 0 {
		return rejected(fmt.Errorf("%w: no topic_info fragment", ErrStructure))
	}

	frag := info.Get(0)
	node, err := extractNode(frag)
	if err != nil {
		return rejected(err)
	}
	author, err := extractAuthor(frag)
	if err != nil {
		return rejected(err)
	}
	postedAt, err := extractPostedAt(frag)
	if err != nil {
		return rejected(err)
	}
	lastReply, err := extractLastReplyUser(frag)
	if err != nil {
		return rejected(err)
	}

	return Candidate{
		Index:  index,
		Status: CandidateAccepted,
		Topic: model.Topic{
			ID:            topicIDFromPath(href),
			Title:         strings.TrimSpace(link.Text()),
			Path:          href,
			Node:          node,
			Author:        author,
			PostedAt:      postedAt,
			LastReplyUser: lastReply,
		},
	}
}

// topicIDFromPath digs the numeric id out of a thread permalink like
// "/t/958255#reply0". Links without a usable id map to 0.
func topicIDFromPath(path string) int {
	parts := strings.Split(path, "/")
	if len(parts) < 3 {
		return 0
	}
	idText, _, _ := strings.Cut(parts[2], "#")
	if id, err := strconv.Atoi(idText); err == nil && id > 0 {
		return id
	}
	return 0
}
