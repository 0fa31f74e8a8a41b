package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// List must ask the server for createdAt descending, newest first
func TestPostListSortsNewestFirst(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find sort option", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		repo := &postRepoImpl{col: mt.Coll}
		posts, err := repo.List(context.Background())
		assert.NoError(mt, err)
		assert.Empty(mt, posts)

		evt := mt.GetStartedEvent()
		assert.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)

		sortVal, err := evt.Command.LookupErr("sort", "createdAt")
		assert.NoError(mt, err)
		assert.Equal(mt, int64(-1), sortVal.AsInt64())
	})
}
