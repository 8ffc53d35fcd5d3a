package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeMenuStore struct {
	findDocs     []interface{}
	findOneDoc   interface{}
	findOneErr   error
	insertResult *mongo.InsertOneResult
	insertErr    error
	updateResult *mongo.UpdateResult
	deleteResult *mongo.DeleteResult

	lastFilter interface{}
	lastUpdate interface{}
	inserted   interface{}
}

func (f *fakeMenuStore) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	f.lastFilter = filter
	return mongo.NewCursorFromDocuments(f.findDocs, nil, nil)
}

func (f *fakeMenuStore) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	f.lastFilter = filter
	doc := f.findOneDoc
	if doc == nil {
		doc = bson.D{}
	}
	return mongo.NewSingleResultFromDocument(doc, f.findOneErr, nil)
}

func (f *fakeMenuStore) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.inserted = document
	return f.insertResult, f.insertErr
}

func (f *fakeMenuStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f.lastFilter = filter
	f.lastUpdate = update
	return f.updateResult, nil
}

func (f *fakeMenuStore) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.lastFilter = filter
	return f.deleteResult, nil
}

func TestGetMenuInvalidID(t *testing.T) {
	mc := NewMenuController(&fakeMenuStore{})

	c, w := testContext(http.MethodGet, "/menu/nothex", "")
	c.Params = gin.Params{{Key: "id", Value: "nothex"}}
	mc.GetMenu()(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetMenuNotFound(t *testing.T) {
	mc := NewMenuController(&fakeMenuStore{findOneErr: mongo.ErrNoDocuments})

	id := primitive.NewObjectID().Hex()
	c, w := testContext(http.MethodGet, "/menu/"+id, "")
	c.Params = gin.Params{{Key: "id", Value: id}}
	mc.GetMenu()(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetMenuReturnsDocument(t *testing.T) {
	id := primitive.NewObjectID()
	name := "Pizza"
	category := "main"
	price := 12.5
	store := &fakeMenuStore{findOneDoc: bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "category", Value: category},
		{Key: "price", Value: price},
	}}
	mc := NewMenuController(store)

	c, w := testContext(http.MethodGet, "/menu/"+id.Hex(), "")
	c.Params = gin.Params{{Key: "id", Value: id.Hex()}}
	mc.GetMenu()(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got["name"] != name || got["category"] != category || got["price"] != price {
		t.Errorf("response = %v, want name=%s category=%s price=%v", got, name, category, price)
	}

	filter, ok := store.lastFilter.(bson.M)
	if !ok || filter["_id"] != id {
		t.Errorf("filter = %v, want _id=%s", store.lastFilter, id.Hex())
	}
}

func TestGetMenusListsCollection(t *testing.T) {
	store := &fakeMenuStore{findDocs: []interface{}{
		bson.D{{Key: "name", Value: "Pizza"}},
		bson.D{{Key: "name", Value: "Salad"}},
	}}
	mc := NewMenuController(store)

	c, w := testContext(http.MethodGet, "/menu", "")
	mc.GetMenus()(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestCreateMenuRejectsInvalidBody(t *testing.T) {
	mc := NewMenuController(&fakeMenuStore{})

	// missing required fields
	c, w := testContext(http.MethodPost, "/menu", `{"image":"x.png"}`)
	mc.CreateMenu()(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreateMenuInserts(t *testing.T) {
	store := &fakeMenuStore{insertResult: &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}}
	mc := NewMenuController(store)

	c, w := testContext(http.MethodPost, "/menu", `{"name":"Pizza","category":"main","price":12.5}`)
	mc.CreateMenu()(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if store.inserted == nil {
		t.Error("expected an insert, got none")
	}
}

func TestUpdateMenuNotFound(t *testing.T) {
	store := &fakeMenuStore{updateResult: &mongo.UpdateResult{MatchedCount: 0}}
	mc := NewMenuController(store)

	id := primitive.NewObjectID().Hex()
	c, w := testContext(http.MethodPatch, "/menu/"+id, `{"price":9.5}`)
	c.Params = gin.Params{{Key: "id", Value: id}}
	mc.UpdateMenu()(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteMenuNotFound(t *testing.T) {
	store := &fakeMenuStore{deleteResult: &mongo.DeleteResult{DeletedCount: 0}}
	mc := NewMenuController(store)

	id := primitive.NewObjectID().Hex()
	c, w := testContext(http.MethodDelete, "/menu/"+id, "")
	c.Params = gin.Params{{Key: "id", Value: id}}
	mc.DeleteMenu()(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
