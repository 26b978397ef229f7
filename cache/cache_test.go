package cache

import "testing"

func TestCacheGetPut(t *testing.T) {
	t.Parallel()
	c := New()
	key := MakeKey(1, 21, []float64{1e-3, 100})
	if _, ok := c.Get(key); ok {
		t.Fatal("Get on empty cache: found a value")
	}
	c.Put(key, 0.42)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get after Put: not found")
	}
	if got != 0.42 {
		t.Errorf("Get = %g, want 0.42", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheKeysDistinguishFlavorAndIdentity(t *testing.T) {
	t.Parallel()
	c := New()
	point := []float64{1e-3, 100}
	c.Put(MakeKey(1, 21, point), 1.0)
	c.Put(MakeKey(1, 2, point), 2.0)
	c.Put(MakeKey(2, 21, point), 3.0)

	if v, ok := c.Get(MakeKey(1, 21, point)); !ok || v != 1.0 {
		t.Errorf("Get(1,21) = %g,%v want 1.0,true", v, ok)
	}
	if v, ok := c.Get(MakeKey(1, 2, point)); !ok || v != 2.0 {
		t.Errorf("Get(1,2) = %g,%v want 2.0,true", v, ok)
	}
	if v, ok := c.Get(MakeKey(2, 21, point)); !ok || v != 3.0 {
		t.Errorf("Get(2,21) = %g,%v want 3.0,true", v, ok)
	}
}

func TestCacheKeysDistinguishCoordinates(t *testing.T) {
	t.Parallel()
	c := New()
	c.Put(MakeKey(1, 21, []float64{1e-3, 100}), 1.0)
	if _, ok := c.Get(MakeKey(1, 21, []float64{1e-3, 101})); ok {
		t.Error("Get with a different Q2: unexpectedly found a value")
	}
}
