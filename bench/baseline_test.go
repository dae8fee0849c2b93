package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kytnacode/jrpcdec"
	"github.com/kytnacode/jrpcdec/bench"
	"github.com/kytnacode/jrpcdec/internal/test"
)

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

func TestDecodeJSONIter_MatchesDecodeEnum(t *testing.T) {
	t.Parallel()

	for name, c := range test.GenTestCases(test.ResponseAspects()...) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			members := test.Members(c)

			for _, order := range test.Orders(len(members)) {
				input := test.Object(members, order)

				want, wantErr := jrpcdec.DecodeEnum(input)
				got, gotErr := bench.DecodeJSONIter(input)

				assert.Equal(t, want, got, "input %s", input)
				assert.Equal(t, errString(wantErr), errString(gotErr), "input %s", input)
			}
		})
	}
}

func TestDecodeJSONIter_NotAnObject(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`[]`, `"x"`, `1`, `null`} {
		_, err := bench.DecodeJSONIter([]byte(input))
		assert.ErrorIs(t, err, bench.ErrNotObject, input)
	}
}

func TestDecodeJSONIter_Malformed(t *testing.T) {
	t.Parallel()

	_, err := bench.DecodeJSONIter([]byte(`{"jsonrpc":"2.0","id":1,"result":[1,}`))
	require.Error(t, err)
}
