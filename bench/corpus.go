package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/kytnacode/jrpcdec/internal/jsonutil"
)

// ErrInvalidCorpus is returned when a corpus can't be used as benchmark input.
var ErrInvalidCorpus = errors.New("invalid corpus")

// LoadCorpus reads the benchmark input from path. The content must be a JSON object, it is
// checked for its first byte only, decoding errors surface on the first timed iteration.
func LoadCorpus(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read corpus")
	}

	if !jsonutil.IsObject(data) {
		return nil, errors.Wrapf(ErrInvalidCorpus, "%s does not hold a JSON object", path)
	}

	return data, nil
}

// GenerateCorpus writes a response with fields unknown members, one per line, to w.
// Member names and values carry escaped backslashes, so every unknown name has to be unescaped
// before it can be matched. The known members are spread through the object.
func GenerateCorpus(w io.Writer, fields int) error {
	if fields < 0 {
		return errors.Wrapf(ErrInvalidCorpus, "negative field count %d", fields)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "{")
	fmt.Fprintln(bw, `  "jsonrpc": "2.0",`)

	for i := range fields {
		if i == fields/2 {
			fmt.Fprintln(bw, `  "id": 1,`)
		}

		fmt.Fprintf(bw, "  \"field\\\\%d\\\\with\\\\backslashes\": \"C:\\\\corpus\\\\%d\",\n", i, i)
	}

	if fields == 0 {
		fmt.Fprintln(bw, `  "id": 1,`)
	}

	fmt.Fprintln(bw, `  "result": {"path": "C:\\corpus", "fields": [1, 2, 3]}`)
	fmt.Fprintln(bw, "}")

	return errors.Wrap(bw.Flush(), "write corpus")
}
