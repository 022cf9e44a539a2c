package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestAPIErrorsDecodesListAndObjectForms(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected APIErrors
	}{
		{"list", `["rate limited"]`, APIErrors{"rate limited"}},
		{"object", `{"token":"invalid key","requests":"limit reached"}`, APIErrors{"requests: limit reached", "token: invalid key"}},
		{"empty list", `[]`, nil},
		{"empty object", `{}`, nil},
		{"null", `null`, nil},
		{"string", `"boom"`, APIErrors{"boom"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got APIErrors
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAPIErrorsMarshalsNilAsEmptyList(t *testing.T) {
	raw, err := json.Marshal(APIErrors(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("expected [], got %s", raw)
	}
}

func TestParametersAcceptsEmptyList(t *testing.T) {
	var p Parameters
	if err := json.Unmarshal([]byte(`[]`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil parameters, got %v", p)
	}

	if err := json.Unmarshal([]byte(`{"id":39,"season":"2023"}`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p["id"] != "39" || p["season"] != "2023" {
		t.Fatalf("unexpected parameters %v", p)
	}
}

func TestCollectionDecodesProviderEnvelope(t *testing.T) {
	raw := `{
		"get": "things",
		"parameters": [],
		"errors": [],
		"results": 2,
		"paging": {"current": 1, "total": 1},
		"response": [{"id": "1", "name": "A"}, {"id": "2", "name": "B"}]
	}`

	var c Collection[item]
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Get != "things" || c.Results != 2 || len(c.Response) != 2 {
		t.Fatalf("unexpected collection %+v", c)
	}
	if c.Errors != nil || c.Parameters != nil {
		t.Fatalf("expected empty errors/parameters to normalise to nil, got %v / %v", c.Errors, c.Parameters)
	}
	if c.Empty() {
		t.Fatalf("expected non-empty collection")
	}
}

func TestCollectionJSONRoundTrip(t *testing.T) {
	original := NewCollection("things", []item{{ID: "1", Name: "A"}})
	original.Parameters = Parameters{"id": "1"}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Collection[item]
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", original, decoded)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	c := NewCollection("things", []item{{ID: "1", Name: "A"}})
	records := c.Records()
	records[0].Name = "changed"
	if c.Response[0].Name != "A" {
		t.Fatalf("expected collection to be unaffected by caller mutation")
	}
}

func TestEmptyCollection(t *testing.T) {
	var c Collection[item]
	if !c.Empty() {
		t.Fatalf("expected zero collection to be empty")
	}
	if got := c.Records(); len(got) != 0 {
		t.Fatalf("expected no records, got %v", got)
	}
}

func TestWireEncodesEmptyListsLikeProvider(t *testing.T) {
	var c Collection[item]
	c.Get = "things"
	raw, err := json.Marshal(c.Wire())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	expected := `{"get":"things","parameters":[],"errors":[],"results":0,"paging":{"current":0,"total":0},"response":[]}`
	if string(raw) != expected {
		t.Fatalf("expected %s, got %s", expected, raw)
	}
	if c.Parameters != nil || c.Errors != nil || c.Response != nil {
		t.Fatalf("expected Wire to leave the receiver untouched")
	}
}
