package model

import (
	"fmt"
	"time"

	"github.com/zvonler/vex/utils"
)

// BaseURL is the origin all relative links on a listing page resolve
// against.
const BaseURL = "https://www.v2ex.com"

type Node struct {
	Name string
	Path string
}

type User struct {
	Name string
	Path string
}

type Topic struct {
	ID            int // 0 when the permalink carries no numeric id
	Title         string
	Path          string
	Node          Node
	Author        User
	PostedAt      time.Time
	LastReplyUser User
}

// DisplayLine formats a topic as a single listing line, with the posting
// time rendered in the offset the site published it in.
func (t Topic) DisplayLine() string {
	return fmt.Sprintf("title: %s time: %s", t.Title, t.PostedAt.Format("2006/01/02 15:04"))
}

// BrowserURL returns the address a web browser can open for the topic.
func (t Topic) BrowserURL() string {
	return utils.AbsoluteURL(BaseURL, t.Path)
}
