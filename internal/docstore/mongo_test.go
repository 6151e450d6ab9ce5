package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("where returns documents and sends filter", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(0, "trivia.questions", mtest.FirstBatch,
			bson.D{{Key: "question", Value: "Q1"}, {Key: "answer", Value: "A1"}, {Key: "level", Value: "easy"}},
			bson.D{{Key: "question", Value: "Q3"}, {Key: "answer", Value: "A3"}, {Key: "level", Value: "easy"}},
		)
		mt.AddMockResponses(first)

		s := NewMongoStore(mt.Client, "trivia")
		docs, err := s.Where(context.Background(), "questions", "level", "easy")
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, "Q1", docs[0]["question"])
		assert.Equal(mt, "Q3", docs[1]["question"])

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, "questions", evt.Command.Lookup("find").StringValue())
		assert.Equal(mt, "easy", evt.Command.Lookup("filter", "level").StringValue())
		assert.Equal(mt, int32(0), evt.Command.Lookup("projection", "_id").Int32())
		assert.Equal(mt, int32(1), evt.Command.Lookup("sort", "_id").Int32())
	})

	mt.Run("where with no matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "trivia.questions", mtest.FirstBatch))

		docs, err := NewMongoStore(mt.Client, "trivia").Where(context.Background(), "questions", "level", "hard")
		require.NoError(mt, err)
		assert.Empty(mt, docs)
	})

	mt.Run("where command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := NewMongoStore(mt.Client, "trivia").Where(context.Background(), "questions", "level", "easy")
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "find in questions")
	})

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := NewMongoStore(mt.Client, "trivia").Insert(context.Background(), "questions",
			Document{"question": "Q1", "answer": "A1", "level": "easy"})
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
	})

	mt.Run("empty collection name", func(mt *mtest.T) {
		s := NewMongoStore(mt.Client, "trivia")
		_, err := s.Where(context.Background(), "", "level", "easy")
		assert.ErrorIs(mt, err, ErrEmptyCollection)
		assert.ErrorIs(mt, s.Insert(context.Background(), "", Document{}), ErrEmptyCollection)
	})
}
