// Package ibd - canonical CSV rendition of a field book.
//
// The column convention (ID,Location,Plot,Rep,IBlock,Entry,Treatment) is
// the field book's external representation; keeping the writer next to the
// Row type spares UI layers from re-implementing it.
package ibd

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the canonical field-book column set, in order.
var csvHeader = []string{"ID", "Location", "Plot", "Rep", "IBlock", "Entry", "Treatment"}

// WriteCSV renders book to w, one record per Row, preceded by the header.
// An empty book still gets the header row.
//
// Returns ErrNilWriter or the underlying csv/write error.
// Complexity: O(len(book)) time.
func WriteCSV(w io.Writer, book []Row) error {
	if w == nil {
		return ErrNilWriter
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	record := make([]string, len(csvHeader))
	for i := range book {
		record[0] = strconv.Itoa(book[i].ID)
		record[1] = strconv.Itoa(book[i].Location)
		record[2] = strconv.Itoa(book[i].Plot)
		record[3] = strconv.Itoa(book[i].Rep)
		record[4] = strconv.Itoa(book[i].Block)
		record[5] = strconv.Itoa(book[i].Entry)
		record[6] = book[i].Treatment
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
