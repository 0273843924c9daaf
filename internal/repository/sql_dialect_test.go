package repository

import "testing"

func TestContainsConditionByDialect(t *testing.T) {
	if got := containsConditionByDialect("sqlite", "products.name"); got != `LOWER(products.name) LIKE LOWER(?) ESCAPE '\'` {
		t.Fatalf("sqlite condition mismatch: %s", got)
	}
	if got := containsConditionByDialect("postgres", "products.name"); got != `products.name ILIKE ? ESCAPE '\'` {
		t.Fatalf("postgres condition mismatch: %s", got)
	}
}

func TestEscapeLike(t *testing.T) {
	got := escapeLike(`50%_off\`)
	want := `50\%\_off\\`
	if got != want {
		t.Fatalf("escape like want %s got %s", want, got)
	}
}

func TestDBDialectNameDefaultsToSQLite(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("dialect want sqlite got %s", got)
	}
}
