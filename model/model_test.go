package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDisplayLine(t *testing.T) {
	topic := Topic{
		Title:    "Hello",
		PostedAt: time.Date(2023, 7, 19, 19, 15, 44, 0, time.FixedZone("CST", 8*3600)),
	}
	require.Equal(t, "title: Hello time: 2023/07/19 19:15", topic.DisplayLine())
}

func TestBrowserURL(t *testing.T) {
	topic := Topic{Path: "/t/1#reply0"}
	require.Equal(t, "https://www.v2ex.com/t/1#reply0", topic.BrowserURL())

	{
		// A topic scraped without a permalink still points somewhere sane
		topic := Topic{}
		require.Equal(t, BaseURL, topic.BrowserURL())
	}
}
