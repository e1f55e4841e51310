package repos_test

import (
	"testing"

	"greenleaf/internal/repos"
)

func memRepo(t *testing.T) *repos.StateRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewStateRepo(db)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	r := memRepo(t)

	if err := r.Save("cart:s1", []byte(`{"items":[]}`)); err != nil {
		t.Fatal(err)
	}
	data, err := r.Load("cart:s1")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"items":[]}` {
		t.Fatalf("bad value: %s", data)
	}
}

func TestLoadMissingKey(t *testing.T) {
	r := memRepo(t)
	data, err := r.Load("cart:never-written")
	if err != nil {
		t.Fatal(err)
	}
	if data != nil {
		t.Fatalf("missing key must load nil, got %s", data)
	}
}

func TestSaveOverwrites(t *testing.T) {
	r := memRepo(t)
	if err := r.Save("wishlist:s1", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := r.Save("wishlist:s1", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	data, err := r.Load("wishlist:s1")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v2" {
		t.Fatalf("last writer wins, got %s", data)
	}
}

func TestDelete(t *testing.T) {
	r := memRepo(t)
	if err := r.Save("cart:s1", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := r.Delete("cart:s1"); err != nil {
		t.Fatal(err)
	}
	data, err := r.Load("cart:s1")
	if err != nil || data != nil {
		t.Fatalf("want (nil, nil) after delete, got (%s, %v)", data, err)
	}
}
