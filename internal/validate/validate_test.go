package validate

import "testing"

func TestStatusFilter(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", false},
		{"null", "", false},
		{"undefined", "", false},
		{" pending ", "pending", true},
		{"inprogress", "inprogress", true},
	}
	for _, tc := range cases {
		got, ok := StatusFilter(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("StatusFilter(%q) = %q,%v; want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEmail(t *testing.T) {
	if _, ok := Email("alice@bloodlink.test"); !ok {
		t.Fatal("valid email rejected")
	}
	if _, ok := Email("not-an-email"); ok {
		t.Fatal("invalid email accepted")
	}
	if _, ok := Email(""); ok {
		t.Fatal("empty email accepted")
	}
}

func TestObjectID(t *testing.T) {
	id, ok := ObjectID("507f191e810c19729de860ea")
	if !ok {
		t.Fatal("valid hex id rejected")
	}
	if id.Hex() != "507f191e810c19729de860ea" {
		t.Fatalf("round trip mismatch: %s", id.Hex())
	}
	if _, ok := ObjectID("zzz"); ok {
		t.Fatal("bad hex id accepted")
	}
}

func TestBloodGroup(t *testing.T) {
	for _, good := range []string{"A+", "O-", "AB+"} {
		if _, ok := BloodGroup(good); !ok {
			t.Fatalf("%q rejected", good)
		}
	}
	if _, ok := BloodGroup("C+"); ok {
		t.Fatal("C+ accepted")
	}
}
