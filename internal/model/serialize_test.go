package model

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	content := `B101|Python Guide|G V
  B102 |  Go In Action | William Kennedy  

B103|Missing Author
B104|Too|Many|Fields
B101|Second Copy|Someone
B105|Dune|Frank Herbert
`

	books, skipped, err := ParseCatalog(strings.NewReader(content))
	require.NoError(t, err)

	require.Len(t, books, 3)
	assert.Equal(t, Book{ID: "B101", Title: "Python Guide", Author: "G V"}, books[0])
	assert.Equal(t, Book{ID: "B102", Title: "Go In Action", Author: "William Kennedy"}, books[1])
	assert.Equal(t, Book{ID: "B105", Title: "Dune", Author: "Frank Herbert"}, books[2])

	require.Len(t, skipped, 3)
	assert.Equal(t, 4, skipped[0].Line)
	assert.Equal(t, 5, skipped[1].Line)
	assert.Equal(t, 6, skipped[2].Line)
	assert.Contains(t, skipped[2].Reason, "duplicate")
}

func TestParseCatalogEmpty(t *testing.T) {
	books, skipped, err := ParseCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Empty(t, skipped)
}

func TestParseCatalogLongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	content := "B1|One|A\nB2|" + long + "|B\nB3|Three|C"

	books, skipped, err := ParseCatalog(strings.NewReader(content))
	require.NoError(t, err)
	assert.Empty(t, skipped)

	require.Len(t, books, 3)
	assert.Equal(t, long, books[1].Title)
	// The last line has no trailing newline.
	assert.Equal(t, Book{ID: "B3", Title: "Three", Author: "C"}, books[2])
}

func TestFormatCatalog(t *testing.T) {
	books := []Book{
		{ID: "B102", Title: "Go In Action", Author: "William Kennedy"},
		{ID: "B101", Title: "Python Guide", Author: "G V"},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatCatalog(&buf, books))

	// Catalog order is preserved, not sorted.
	assert.Equal(t, "B102|Go In Action|William Kennedy\nB101|Python Guide|G V\n", buf.String())
}

func TestParseIssued(t *testing.T) {
	t.Run("space after colon is optional", func(t *testing.T) {
		content := "S101: B101,B102\nS102:B103\n"

		records, skipped, err := ParseIssued(strings.NewReader(content))
		require.NoError(t, err)
		assert.Empty(t, skipped)

		assert.Equal(t, IssuedRecords{
			"S101": NewBookSet("B101", "B102"),
			"S102": NewBookSet("B103"),
		}, records)
	})

	t.Run("book ids are trimmed and empties ignored", func(t *testing.T) {
		records, _, err := ParseIssued(strings.NewReader("S101:  B101 , ,B102,\n"))
		require.NoError(t, err)
		assert.Equal(t, NewBookSet("B101", "B102"), records["S101"])
	})

	t.Run("malformed lines are skipped", func(t *testing.T) {
		content := "S101 B101\nS102:B102:B103\n:B104\nS103:\nS104: B105\n"

		records, skipped, err := ParseIssued(strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, IssuedRecords{"S104": NewBookSet("B105")}, records)
		require.Len(t, skipped, 4)
		assert.Equal(t, []int{1, 2, 3, 4}, []int{skipped[0].Line, skipped[1].Line, skipped[2].Line, skipped[3].Line})
	})

	t.Run("book claimed twice keeps first holder", func(t *testing.T) {
		content := "S101: B101\nS102: B101,B102\nS103: B101\n"

		records, skipped, err := ParseIssued(strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, IssuedRecords{
			"S101": NewBookSet("B101"),
			"S102": NewBookSet("B102"),
		}, records)
		// S102 loses B101; S103 loses B101 and then has nothing left.
		require.Len(t, skipped, 3)
		assert.Contains(t, skipped[0].Reason, "already issued to S101")
		assert.Equal(t, 3, skipped[2].Line)
	})

	t.Run("student on two lines keeps the union", func(t *testing.T) {
		records, skipped, err := ParseIssued(strings.NewReader("S101: B101\nS101: B102\n"))
		require.NoError(t, err)
		assert.Empty(t, skipped)
		assert.Equal(t, NewBookSet("B101", "B102"), records["S101"])
	})
}

func TestParseIssuedLongLine(t *testing.T) {
	ids := make([]string, 0, 20000)
	for i := 0; i < 20000; i++ {
		ids = append(ids, fmt.Sprintf("B%05d", i))
	}
	content := "S1: " + strings.Join(ids, ",") + "\nS2: B1"

	records, _, err := ParseIssued(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, NewBookSet(ids...), records["S1"])
	assert.Equal(t, NewBookSet("B1"), records["S2"])
}

func TestFormatIssued(t *testing.T) {
	records := IssuedRecords{
		"S102": NewBookSet("B103"),
		"S101": NewBookSet("B102", "B101"),
		"S103": NewBookSet(),
	}

	var buf bytes.Buffer
	require.NoError(t, FormatIssued(&buf, records))

	assert.Equal(t, "S101: B101,B102\nS102: B103\n", buf.String())
	assert.NotContains(t, buf.String(), "S103")
}

func TestCatalogRoundTrip(t *testing.T) {
	books := []Book{
		{ID: "B101", Title: "Python Guide", Author: "G V"},
		{ID: "B7", Title: "The Go Programming Language", Author: "Alan Donovan"},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatCatalog(&buf, books))

	loaded, skipped, err := ParseCatalog(&buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, books, loaded)

	t.Run("title longer than a scanner buffer", func(t *testing.T) {
		books := []Book{{ID: "B2", Title: strings.Repeat("Long ", 20000) + "End", Author: "X"}}

		var buf bytes.Buffer
		require.NoError(t, FormatCatalog(&buf, books))

		loaded, _, err := ParseCatalog(&buf)
		require.NoError(t, err)
		assert.Equal(t, books, loaded)
	})
}

func TestIssuedRoundTrip(t *testing.T) {
	records := IssuedRecords{
		"S101": NewBookSet("B101", "B105"),
		"S202": NewBookSet("B7"),
	}

	var buf bytes.Buffer
	require.NoError(t, FormatIssued(&buf, records))

	loaded, skipped, err := ParseIssued(&buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, records, loaded)
}
