package topic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopicTarget(t *testing.T) {
	target, err := topicTarget("958255")
	require.Equal(t, nil, err)
	require.Equal(t, "https://www.v2ex.com/t/958255", target)

	{
		// Full URLs pass through untouched
		target, err := topicTarget("https://www.v2ex.com/t/958255#reply42")
		require.Equal(t, nil, err)
		require.Equal(t, "https://www.v2ex.com/t/958255#reply42", target)
	}
}

func TestTopicTargetRejectsGarbage(t *testing.T) {
	_, err := topicTarget("0")
	require.NotEqual(t, nil, err)

	_, err = topicTarget("-7")
	require.NotEqual(t, nil, err)

	_, err = topicTarget("not a url")
	require.NotEqual(t, nil, err)

	_, err = topicTarget("/t/958255")
	require.NotEqual(t, nil, err)
}
