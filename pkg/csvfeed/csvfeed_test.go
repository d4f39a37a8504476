package csvfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	feed := strings.Join([]string{
		"id,text,severity,updatedAt,brand",
		"a1,CPA above target,warn,2026-08-29T10:00:00Z,acme",
		"a2,Feed rejected,crit,2026-08-29T11:00:00Z,",
		",orphan row without id,warn,2026-08-29T12:00:00Z,acme",
		"a3,All good,good,2026-08-29T13:00:00Z,globex",
	}, "\n")

	rows, err := Parse(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "a1", rows[0].ID)
	assert.Equal(t, "CPA above target", rows[0].Text)
	assert.Equal(t, "warn", rows[0].Severity)
	assert.Equal(t, "acme", rows[0].Brand)

	assert.Equal(t, "a2", rows[1].ID)
	assert.Equal(t, "", rows[1].Brand)

	assert.Equal(t, "good", rows[2].Severity)
}

func TestParse_NoBrandColumn(t *testing.T) {
	feed := "id,text,severity,updatedAt\na1,hello,warn,2026-08-29T10:00:00Z"

	rows, err := Parse(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Brand)
}

func TestParse_HeaderCaseInsensitive(t *testing.T) {
	feed := "ID,Text,Severity,UpdatedAt\na1,hello,OK,2026-08-29T10:00:00Z"

	rows, err := Parse(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestParse_MissingColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("id,text\na1,hello"))
	assert.ErrorIs(t, err, ErrMissingColumns)

	_, err = Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestFetch(t *testing.T) {
	feed := "id,text,severity,updatedAt\na1,hello,warn,2026-08-29T10:00:00Z"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feed))
	}))
	defer srv.Close()

	rows, raw, err := New(Config{}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, feed, string(raw))
}

func TestFetch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, _, err := New(Config{}).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csvfeed 403")
}
