package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	ev := NewEvent("article_created", map[string]any{"id": 1})

	_, err := uuid.Parse(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "article_created", ev.Type)
	assert.False(t, ev.OccurredAt.IsZero())

	data, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "article_created", decoded["type"])
	assert.EqualValues(t, 1, decoded["payload"].(map[string]any)["id"])
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), TopicArticles, "1", NewEvent("x", nil)))
	assert.NoError(t, p.Close())
}

func TestNewProducer_ConfiguresWriter(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	require.NotNil(t, p.writer)
	assert.Equal(t, "localhost:9092", p.writer.Addr.String())
	assert.True(t, p.writer.AllowAutoTopicCreation)
	assert.Equal(t, 1, p.writer.BatchSize)
	assert.Equal(t, 10*time.Millisecond, p.writer.BatchTimeout)
	assert.NoError(t, p.Close())
}
