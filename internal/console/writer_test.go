package console

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncWriter_ConcurrentBlocksStayWhole(t *testing.T) {
	var buf bytes.Buffer
	sw := NewSyncWriter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sw.Do(func(w io.Writer) {
				fmt.Fprintf(w, "start-%d\n", i)
				fmt.Fprintf(w, "end-%d\n", i)
			})
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 40)
	for j := 0; j < len(lines); j += 2 {
		var a, b int
		fmt.Sscanf(lines[j], "start-%d", &a)
		fmt.Sscanf(lines[j+1], "end-%d", &b)
		assert.Equal(t, a, b, "block %d was interleaved", j/2)
	}
}
