package sheets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaivocab/thaivocab/internal/sheets"
)

func TestParseCSV(t *testing.T) {
	csv := strings.Join([]string{
		`Thai,Pronunciation,English,Override`,
		`สวัสดี,sawatdee,hello,`,
		`50,haa sip,fifty,ห้าสิบ`,
		` ไป , bpai , to go ,`,
	}, "\n")

	rows, err := sheets.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, sheets.Row{Thai: "สวัสดี", Phonetic: "sawatdee", English: "hello"}, rows[0])
	assert.Equal(t, sheets.Row{Thai: "50", Phonetic: "haa sip", English: "fifty", Override: "ห้าสิบ"}, rows[1])
	assert.Equal(t, sheets.Row{Thai: "ไป", Phonetic: "bpai", English: "to go"}, rows[2])
}

func TestParseCSV_UnknownColumnsIgnored(t *testing.T) {
	csv := strings.Join([]string{
		`Notes,Thai,English`,
		`review later,มา,to come`,
	}, "\n")

	rows, err := sheets.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, sheets.Row{Thai: "มา", English: "to come"}, rows[0])
}

func TestParseCSV_ShortRowsPadded(t *testing.T) {
	csv := strings.Join([]string{
		`Thai,Pronunciation,English,Override`,
		`กิน,gin`,
	}, "\n")

	rows, err := sheets.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, sheets.Row{Thai: "กิน", Phonetic: "gin"}, rows[0])
}

func TestParseCSV_Empty(t *testing.T) {
	rows, err := sheets.ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFetchTab(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte("Thai,English\nสวัสดี,hello\n"))
	}))
	defer srv.Close()

	client := sheets.New(sheets.WithBaseURL(srv.URL))
	rows, err := client.FetchTab(context.Background(), "sheet123", "Tab One")
	require.NoError(t, err)

	assert.Equal(t, "/spreadsheets/d/sheet123/gviz/tq", gotPath)
	assert.Contains(t, gotQuery, "tqx=out:csv")
	assert.Contains(t, gotQuery, "sheet=Tab+One")
	require.Len(t, rows, 1)
	assert.Equal(t, sheets.Row{Thai: "สวัสดี", English: "hello"}, rows[0])
}

func TestFetchTab_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such sheet", http.StatusNotFound)
	}))
	defer srv.Close()

	client := sheets.New(sheets.WithBaseURL(srv.URL))
	_, err := client.FetchTab(context.Background(), "sheet123", "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
