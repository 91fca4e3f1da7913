package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
	"github.com/rocketscienceinc/droptoken-backend/testing/suite"
)

func TestEventRepository_Publish(t *testing.T) {
	t.Run("Subscriber receives the event", func(t *testing.T) {
		ctx, st := suite.New(t)

		events := NewEventRepository(st.Storage, "drop_token")

		// Given: a subscriber on the game's channel
		sub := events.Subscribe(ctx, "g1")
		defer sub.Close()

		_, err := sub.Receive(ctx)
		require.NoError(t, err)

		event := entity.MoveEvent{
			GameID: "g1",
			Move:   entity.NewPlaceMove("p1", 2),
			Index:  0,
			State:  entity.StatusInProgress,
		}

		// When: an event is published
		err = events.Publish(ctx, event)
		require.NoError(t, err)

		// Then: the subscriber receives it on "drop_token:g1"
		msg, err := sub.ReceiveMessage(ctx)
		require.NoError(t, err)
		assert.Equal(t, "drop_token:g1", msg.Channel)

		var received entity.MoveEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &received))
		assert.Equal(t, event, received)
	})

	t.Run("Publish without subscribers succeeds", func(t *testing.T) {
		ctx, st := suite.New(t)

		events := NewEventRepository(st.Storage, "drop_token")

		err := events.Publish(ctx, entity.MoveEvent{GameID: "nobody", Move: entity.NewQuitMove("p2"), Index: -1})
		require.NoError(t, err)
	})

	t.Run("Publish on closed connection fails", func(t *testing.T) {
		ctx, st := suite.New(t)

		events := NewEventRepository(st.Storage, "drop_token")
		require.NoError(t, st.Storage.Close())

		err := events.Publish(ctx, entity.MoveEvent{GameID: "g1"})
		require.Error(t, err)
	})
}
