package test

import (
	"bytes"
	"sort"
)

// Aspect keys of the generated responses.
const (
	JSONRPCKey = "jsonrpc"
	IDKey      = "id"
	PayloadKey = "payload"
	ExtraKey   = "extra"
)

// Member is a single member of a generated JSON object, Value is raw JSON.
type Member struct {
	Name  string
	Value string
}

// ResponseAspects returns the aspects of a response object: how jsonrpc, id and the payload members
// are present, and which unknown members surround them.
func ResponseAspects() []Aspect[[]Member] {
	return []Aspect[[]Member]{
		NewAspect(JSONRPCKey,
			NewValue[[]Member]("no-jsonrpc", nil),
			NewValue("jsonrpc", []Member{{"jsonrpc", `"2.0"`}}),
			NewValue("null-jsonrpc", []Member{{"jsonrpc", `null`}}),
			NewValue("twice-jsonrpc", []Member{{"jsonrpc", `1`}, {"jsonrpc", `2`}}),
		),
		NewAspect(IDKey,
			NewValue[[]Member]("no-id", nil),
			NewValue("number-id", []Member{{"id", `1`}}),
			NewValue("string-id", []Member{{"id", `"abc"`}}),
			NewValue("escaped-id", []Member{{`\u0069d`, `null`}}),
		),
		NewAspect(PayloadKey,
			NewValue[[]Member]("no-payload", nil),
			NewValue("result", []Member{{"result", `{"value":[1,2,3]}`}}),
			NewValue("error", []Member{{"error", `{"code":-32601,"message":"Method not found"}`}}),
			NewValue("result-and-error", []Member{{"result", `null`}, {"error", `null`}}),
			NewValue("result-twice", []Member{{"result", `1`}, {"result", `2`}}),
			NewValue("escaped-result", []Member{{`r\u0065sult`, `true`}}),
		),
		NewAspect(ExtraKey,
			NewValue[[]Member]("no-extra", nil),
			NewValue("nested-extra", []Member{{"extra", `{"nested":[1,2,{"deep":[{}]}]}`}}),
			NewValue("lookalike-extra", []Member{{"JSONRPC", `"2.0"`}, {" id", `1`}, {"results", `[]`}}),
		),
	}
}

// Members flattens a generated case into its members, sorted by aspect key for a stable order.
func Members(c map[string][]Member) []Member {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var members []Member
	for _, k := range keys {
		members = append(members, c[k]...)
	}

	return members
}

// Object renders members as a JSON object, in the order given by order, a permutation of the member indexes.
// A nil order keeps the members order.
func Object(members []Member, order []int) []byte {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i := range members {
		m := members[i]
		if order != nil {
			m = members[order[i]]
		}

		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteByte('"')
		buf.WriteString(m.Name) // Names are written raw, escapes included.
		buf.WriteString(`":`)
		buf.WriteString(m.Value)
	}

	buf.WriteByte('}')

	return buf.Bytes()
}

// Orders returns every rotation of n indexes, and every rotation of them reversed.
// It stands in for all permutations, which grow too fast to enumerate.
func Orders(n int) [][]int {
	if n == 0 {
		return [][]int{nil}
	}

	orders := make([][]int, 0, 2*n)

	for shift := range n {
		forward := make([]int, n)
		backward := make([]int, n)

		for i := range n {
			forward[i] = (i + shift) % n
			backward[i] = n - 1 - forward[i]
		}

		orders = append(orders, forward, backward)
	}

	return orders
}
