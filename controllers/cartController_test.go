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

type fakeCartStore struct {
	findDocs     []interface{}
	insertResult *mongo.InsertOneResult
	deleteResult *mongo.DeleteResult

	lastFilter interface{}
	inserted   interface{}
}

func (f *fakeCartStore) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	f.lastFilter = filter
	return mongo.NewCursorFromDocuments(f.findDocs, nil, nil)
}

func (f *fakeCartStore) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.inserted = document
	return f.insertResult, nil
}

func (f *fakeCartStore) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.lastFilter = filter
	return f.deleteResult, nil
}

func TestGetCartsFiltersByEmail(t *testing.T) {
	store := &fakeCartStore{findDocs: []interface{}{
		bson.D{{Key: "email", Value: "user@example.com"}, {Key: "name", Value: "Pizza"}},
	}}
	cc := NewCartController(store)

	c, w := testContext(http.MethodGet, "/carts?email=user@example.com", "")
	cc.GetCarts()(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	filter, ok := store.lastFilter.(bson.M)
	if !ok || filter["email"] != "user@example.com" {
		t.Errorf("filter = %v, want email=user@example.com", store.lastFilter)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestCreateCartRejectsMissingFields(t *testing.T) {
	cc := NewCartController(&fakeCartStore{})

	c, w := testContext(http.MethodPost, "/carts", `{"email":"user@example.com"}`)
	cc.CreateCart()(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreateCartInserts(t *testing.T) {
	store := &fakeCartStore{insertResult: &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}}
	cc := NewCartController(store)

	body := `{"email":"user@example.com","menuItemId":"` + primitive.NewObjectID().Hex() + `","name":"Pizza","price":12.5}`
	c, w := testContext(http.MethodPost, "/carts", body)
	cc.CreateCart()(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if store.inserted == nil {
		t.Error("expected an insert, got none")
	}
}

func TestDeleteCartNotFound(t *testing.T) {
	store := &fakeCartStore{deleteResult: &mongo.DeleteResult{DeletedCount: 0}}
	cc := NewCartController(store)

	id := primitive.NewObjectID().Hex()
	c, w := testContext(http.MethodDelete, "/carts/"+id, "")
	c.Params = gin.Params{{Key: "id", Value: id}}
	cc.DeleteCart()(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteCartInvalidID(t *testing.T) {
	cc := NewCartController(&fakeCartStore{})

	c, w := testContext(http.MethodDelete, "/carts/zzz", "")
	c.Params = gin.Params{{Key: "id", Value: "zzz"}}
	cc.DeleteCart()(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
