package test_test

import (
	"sort"
	"testing"

	"github.com/kytnacode/jrpcdec/internal/test"
)

func TestObject(t *testing.T) {
	t.Parallel()

	members := []test.Member{{Name: "a", Value: "1"}, {Name: `b\n`, Value: `"x"`}, {Name: "c", Value: "[]"}}

	type data struct {
		order    []int
		expected string
	}

	testData := map[string]data{
		"member order": {order: nil, expected: `{"a":1,"b\n":"x","c":[]}`},
		"reversed":     {order: []int{2, 1, 0}, expected: `{"c":[],"b\n":"x","a":1}`},
	}

	for name, data := range testData {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := string(test.Object(members, data.order)); got != data.expected {
				t.Errorf("Expected %s, got %s", data.expected, got)
			}
		})
	}

	if got := string(test.Object(nil, nil)); got != "{}" {
		t.Errorf("Expected {}, got %s", got)
	}
}

func TestOrders_ShouldBePermutations(t *testing.T) {
	t.Parallel()

	for n := range 6 {
		orders := test.Orders(n)

		if n == 0 {
			if len(orders) != 1 || orders[0] != nil {
				t.Errorf("Expected a single nil order, got %v", orders)
			}

			continue
		}

		if len(orders) != 2*n {
			t.Errorf("Expected %d orders for %d members, got %d", 2*n, n, len(orders))
		}

		for _, order := range orders {
			sorted := append([]int(nil), order...)
			sort.Ints(sorted)

			for i, v := range sorted {
				if i != v {
					t.Fatalf("Order %v is not a permutation of %d indexes", order, n)
				}
			}
		}
	}
}

func TestMembers_ShouldFollowAspectKeys(t *testing.T) {
	t.Parallel()

	c := map[string][]test.Member{
		test.PayloadKey: {{Name: "result", Value: "1"}},
		test.IDKey:      {{Name: "id", Value: "1"}},
		test.JSONRPCKey: nil,
	}

	members := test.Members(c)

	if len(members) != 2 || members[0].Name != "id" || members[1].Name != "result" {
		t.Errorf("Unexpected members %v", members)
	}
}

func TestResponseAspects_ShouldCoverEveryKey(t *testing.T) {
	t.Parallel()

	cases := test.GenTestCases(test.ResponseAspects()...)

	if len(cases) != 4*4*6*3 {
		t.Errorf("Expected %d cases, got %d", 4*4*6*3, len(cases))
	}

	for name, c := range cases {
		for _, key := range []string{test.JSONRPCKey, test.IDKey, test.PayloadKey, test.ExtraKey} {
			if _, ok := c[key]; !ok {
				t.Errorf("Case %s misses key %s", name, key)
			}
		}
	}
}
