package writers

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"seguid/pkg/api"
)

const tsvHeader = "id\ttype\tlength\tchecksum"

// writeText prints one checksum per line, followed by two spaces and the
// record id when there is one.
func writeText(w io.Writer, in <-chan api.ChecksumV1, o Options) error {
	bw := bufio.NewWriter(w)
	for r := range in {
		line := r.Checksum
		if o.Message {
			line = r.Message
		}
		if r.ID != "" {
			line += "  " + r.ID
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeTSV prints id, type, length and checksum columns. With Message the
// canonical message follows as a fifth column, newlines escaped.
func writeTSV(w io.Writer, in <-chan api.ChecksumV1, o Options) error {
	bw := bufio.NewWriter(w)
	if o.Header {
		h := tsvHeader
		if o.Message {
			h += "\tmessage"
		}
		if _, err := bw.WriteString(h + "\n"); err != nil {
			return err
		}
	}
	for r := range in {
		cols := []string{r.ID, r.Type, strconv.Itoa(r.Length), r.Checksum}
		if o.Message {
			cols = append(cols, strings.ReplaceAll(r.Message, "\n", `\n`))
		}
		if _, err := bw.WriteString(strings.Join(cols, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
