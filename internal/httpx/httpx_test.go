package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"x","bogus":1}`), &dst)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"x"}{"name":"y"}`), &dst)
	if err == nil {
		t.Fatal("expected error for second JSON object")
	}
}

func TestParseLimitOffset(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantLimit  int64
		wantOffset int64
		wantErr    bool
	}{
		{name: "defaults", query: "", wantLimit: 50, wantOffset: 0},
		{name: "explicit", query: "limit=10&offset=20", wantLimit: 10, wantOffset: 20},
		{name: "capped", query: "limit=9999", wantLimit: 200, wantOffset: 0},
		{name: "zero limit", query: "limit=0", wantErr: true},
		{name: "negative offset", query: "offset=-1", wantErr: true},
		{name: "garbage", query: "limit=abc", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tc.query)
			limit, offset, err := ParseLimitOffset(values, 50, 200)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if limit != tc.wantLimit || offset != tc.wantOffset {
				t.Errorf("got limit=%d offset=%d, want %d/%d", limit, offset, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}

func TestParseBoolFilter(t *testing.T) {
	values, _ := url.ParseQuery("featured=true&broken=maybe")

	if v, ok := ParseBoolFilter(values, "featured"); !ok || !v {
		t.Errorf("featured = (%v, %v), want (true, true)", v, ok)
	}
	if _, ok := ParseBoolFilter(values, "missing"); ok {
		t.Error("missing parameter should not be ok")
	}
	if _, ok := ParseBoolFilter(values, "broken"); ok {
		t.Error("unparseable parameter should not be ok")
	}
}
