package registrytest

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestRegistryServesScopedNames(t *testing.T) {
	reg := New(t)
	reg.AddPackage("@bar/baz", map[string]string{"2.0.0": "2021-06-15T12:30:00.000Z"})

	for _, path := range []string{"/@bar%2Fbaz", "/@bar/baz", "/%40bar%2Fbaz"} {
		resp, err := http.Get(reg.URL() + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		var doc struct {
			Name string            `json:"name"`
			Time map[string]string `json:"time"`
		}
		err = json.NewDecoder(resp.Body).Decode(&doc)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
		if doc.Name != "@bar/baz" || doc.Time["2.0.0"] == "" {
			t.Errorf("GET %s = %+v", path, doc)
		}
	}

	if got := reg.Requests(); len(got) != 3 || got[0] != "@bar/baz" {
		t.Errorf("Requests() = %q", got)
	}
}

func TestRegistryNotFoundAndFail(t *testing.T) {
	reg := New(t)
	reg.AddPackage("flaky", map[string]string{})
	reg.Fail("flaky", http.StatusServiceUnavailable)

	tests := map[string]int{
		"/missing": http.StatusNotFound,
		"/flaky":   http.StatusServiceUnavailable,
	}
	for path, want := range tests {
		resp, err := http.Get(reg.URL() + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != want {
			t.Errorf("GET %s status = %d, want %d", path, resp.StatusCode, want)
		}
	}
}
