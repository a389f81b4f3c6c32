package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-admin/internal/shared"
)

type row struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Year     int       `json:"publication_year"`
	Active   bool      `json:"active"`
	JoinedAt time.Time `json:"joined_at"`
}

func sampleRows() []row {
	return []row{
		{ID: 1, Title: "Clean Code", Author: "Robert Martin", Year: 2008},
		{ID: 2, Title: "The Go Programming Language", Author: "Donovan", Year: 2015},
		{ID: 3, Title: "Clean Architecture", Author: "Robert Martin", Year: 2017},
		{ID: 4, Title: "Refactoring", Author: "Martin Fowler", Year: 1999},
	}
}

func TestFilter(t *testing.T) {
	t.Run("case-insensitive substring match on strings", func(t *testing.T) {
		got := Filter(sampleRows(), map[string]interface{}{"title": "clean"})

		require.Len(t, got, 2)
		assert.Equal(t, "Clean Code", got[0].Title)
		assert.Equal(t, "Clean Architecture", got[1].Title)
	})

	t.Run("strict equality on non-strings", func(t *testing.T) {
		got := Filter(sampleRows(), map[string]interface{}{"publication_year": 2015})

		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("all constraints must match", func(t *testing.T) {
		got := Filter(sampleRows(), map[string]interface{}{
			"author": "martin",
			"title":  "refactoring",
		})

		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].ID)
	})

	t.Run("empty constraints auto-pass", func(t *testing.T) {
		got := Filter(sampleRows(), map[string]interface{}{
			"title":  "",
			"author": nil,
		})

		assert.Len(t, got, 4)
	})

	t.Run("unknown field matches nothing", func(t *testing.T) {
		got := Filter(sampleRows(), map[string]interface{}{"isbn": "123"})

		assert.Empty(t, got)
	})

	t.Run("numeric widths compare as values", func(t *testing.T) {
		got := Filter(sampleRows(), map[string]interface{}{"publication_year": int64(2008)})

		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})
}

func TestSortBy(t *testing.T) {
	t.Run("string ascending", func(t *testing.T) {
		items := []row{
			{ID: 1, Title: "Echo"},
			{ID: 2, Title: "Alpha"},
			{ID: 3, Title: "Delta"},
			{ID: 4, Title: "Bravo"},
			{ID: 5, Title: "Charlie"},
		}

		got := SortBy(items, "title", Asc)

		titles := make([]string, 0, len(got))
		for _, r := range got {
			titles = append(titles, r.Title)
		}
		assert.Equal(t, []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}, titles)
	})

	t.Run("desc inverts asc exactly", func(t *testing.T) {
		asc := SortBy(sampleRows(), "publication_year", Asc)
		desc := SortBy(sampleRows(), "publication_year", Desc)

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		items := []row{
			{ID: 1, Author: "Martin"},
			{ID: 2, Author: "Abel"},
			{ID: 3, Author: "Martin"},
			{ID: 4, Author: "Martin"},
		}

		got := SortBy(items, "author", Asc)

		require.Len(t, got, 4)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, []int{1, 3, 4}, []int{got[1].ID, got[2].ID, got[3].ID})
	})

	t.Run("stable for equal keys desc", func(t *testing.T) {
		items := []row{
			{ID: 1, Author: "Martin"},
			{ID: 2, Author: "Abel"},
			{ID: 3, Author: "Martin"},
			{ID: 4, Author: "Martin"},
		}

		got := SortBy(items, "author", Desc)

		// Martin đứng trước Abel, nhưng ba row Martin giữ nguyên
		// input order dù sort desc.
		require.Len(t, got, 4)
		assert.Equal(t, []int{1, 3, 4}, []int{got[0].ID, got[1].ID, got[2].ID})
		assert.Equal(t, 2, got[3].ID)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		items := sampleRows()
		SortBy(items, "title", Asc)

		assert.Equal(t, 1, items[0].ID)
	})

	t.Run("time fields sort chronologically", func(t *testing.T) {
		base := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		items := []row{
			{ID: 1, JoinedAt: base.AddDate(0, 2, 0)},
			{ID: 2, JoinedAt: base},
			{ID: 3, JoinedAt: base.AddDate(0, 1, 0)},
		}

		got := SortBy(items, "joined_at", Asc)

		assert.Equal(t, []int{2, 3, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
	})
}

func TestPaginate(t *testing.T) {
	items := make([]row, 23)
	for i := range items {
		items[i] = row{ID: i + 1}
	}

	t.Run("full pages plus remainder", func(t *testing.T) {
		p1, err := Paginate(items, 1, 10)
		require.NoError(t, err)
		p2, err := Paginate(items, 2, 10)
		require.NoError(t, err)
		p3, err := Paginate(items, 3, 10)
		require.NoError(t, err)

		assert.Len(t, p1.Data, 10)
		assert.Len(t, p2.Data, 10)
		assert.Len(t, p3.Data, 3)
		assert.Equal(t, 11, p2.Data[0].ID)
		assert.Equal(t, 23, p3.Data[2].ID)
		assert.Equal(t, 3, p1.Pagination.TotalPages)
		assert.Equal(t, 23, p1.Pagination.Total)
	})

	t.Run("page past the end returns empty data", func(t *testing.T) {
		got, err := Paginate(items, 9, 10)

		require.NoError(t, err)
		assert.Empty(t, got.Data)
		assert.Equal(t, 9, got.Pagination.Page)
		assert.Equal(t, 3, got.Pagination.TotalPages)
	})

	t.Run("empty collection", func(t *testing.T) {
		got, err := Paginate([]row{}, 1, 10)

		require.NoError(t, err)
		assert.Empty(t, got.Data)
		assert.Equal(t, 0, got.Pagination.Total)
		assert.Equal(t, 0, got.Pagination.TotalPages)
	})

	t.Run("rejects invalid limit and page", func(t *testing.T) {
		_, err := Paginate(items, 1, 0)
		assert.True(t, shared.IsValidationError(err))

		_, err = Paginate(items, 0, 10)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestApply(t *testing.T) {
	t.Run("filter then sort then paginate", func(t *testing.T) {
		got, err := Apply(sampleRows(), Params{
			Page:      1,
			Limit:     10,
			SortBy:    "publication_year",
			SortOrder: Desc,
			Filters:   map[string]interface{}{"author": "robert"},
		})

		require.NoError(t, err)
		require.Len(t, got.Data, 2)
		assert.Equal(t, "Clean Architecture", got.Data[0].Title)
		assert.Equal(t, "Clean Code", got.Data[1].Title)
		assert.Equal(t, 2, got.Pagination.Total)
	})

	t.Run("pagination counts the filtered set", func(t *testing.T) {
		got, err := Apply(sampleRows(), Params{
			Page:    1,
			Limit:   1,
			Filters: map[string]interface{}{"author": "martin"},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, got.Pagination.Total)
		assert.Equal(t, 3, got.Pagination.TotalPages)
	})
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, Desc, ParseOrder("desc"))
	assert.Equal(t, Desc, ParseOrder("DESC"))
	assert.Equal(t, Asc, ParseOrder("asc"))
	assert.Equal(t, Asc, ParseOrder(""))
	assert.Equal(t, Asc, ParseOrder("sideways"))
}
