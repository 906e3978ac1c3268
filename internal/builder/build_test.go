package builder

import (
	"context"
	"encoding/csv"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"processmap-generator/internal/diagnostic"
	"processmap-generator/internal/openapi"
	"processmap-generator/internal/record"
)

func seq(recs []record.Record, failAt int, failure error) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		for i, rec := range recs {
			if i == failAt {
				yield(record.Record{}, failure)
				return
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

func TestBuildObservesEveryRecord(t *testing.T) {
	recs := []record.Record{
		checkRecord(1, "1", "A", "P"),
		checkRecord(2, "--", "A", "P"),
		checkRecord(3, "2", "B", "Q"),
	}

	var seen []string

	var rows []int

	doc, diags, err := Build(context.Background(), DefaultOptions(), seq(recs, -1, nil), func(e Entry) error {
		seen = append(seen, e.Path.Key()+" "+e.Schema.ID)
		rows = append(rows, e.Row)
		return nil
	})
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())

	assert.Equal(t, []string{"/A PI1", "/A REFAnmelden", "/B PI2"}, seen)
	assert.Equal(t, []int{1, 2, 3}, rows)
	assert.Equal(t, []string{"/A", "/B"}, doc.Paths.Keys())
	assert.Equal(t, []string{"PI1", "PI2"}, doc.Components.Schemas.Keys())
}

func TestBuildAbortsOnSourceError(t *testing.T) {
	failure := errors.New("source unreadable")
	recs := []record.Record{checkRecord(1, "1", "A", "P"), checkRecord(2, "2", "B", "P")}

	doc, diags, err := Build(context.Background(), DefaultOptions(), seq(recs, 1, failure), nil)
	assert.ErrorIs(t, err, failure)
	assert.Nil(t, doc)

	require.True(t, diags.HasErrors())
	require.Len(t, diags.ByCode(diagnostic.CodeUnreadableRow), 1)
	assert.EqualError(t, diags.Error(), "[UNREADABLE_ROW] source unreadable")
}

func TestBuildRecordsUnreadableRow(t *testing.T) {
	recs := []record.Record{
		checkRecord(1, "1", "A", "P"),
		checkRecord(2, "2", "B", "P"),
		checkRecord(3, "3", "C", "P"),
	}
	failure := &record.ReadError{Row: 3, Err: csv.ErrQuote}

	added := 0
	_, diags, err := Build(context.Background(), DefaultOptions(), seq(recs, 2, failure), func(Entry) error {
		added++
		return nil
	})
	require.ErrorIs(t, err, csv.ErrQuote)
	assert.Equal(t, 2, added)

	unreadable := diags.ByCode(diagnostic.CodeUnreadableRow)
	require.Len(t, unreadable, 1)
	assert.Equal(t, 3, unreadable[0].Row)
	assert.Equal(t, diagnostic.SeverityError, unreadable[0].Severity)
}

func TestBuildStopsWhenObserverFails(t *testing.T) {
	stop := errors.New("sink full")
	recs := []record.Record{checkRecord(1, "1", "A", "P"), checkRecord(2, "2", "B", "P")}

	calls := 0
	doc, diags, err := Build(context.Background(), DefaultOptions(), seq(recs, -1, nil), func(Entry) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Nil(t, doc)
	assert.Equal(t, 1, calls)
	assert.False(t, diags.HasErrors())
}

func TestBuildHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := []record.Record{checkRecord(1, "1", "A", "P")}

	doc, _, err := Build(ctx, DefaultOptions(), seq(recs, -1, nil), func(Entry) error {
		t.Fatal("record observed after cancel")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, doc)
}

func TestBuildFromReaderIsDeterministic(t *testing.T) {
	src := strings.Join([]string{
		"1;;Erste;11001;OK;Wechsel;Kapitel 4 Nr. 2 Text;Anmeldung;1;Anmelden;LF;NB;;;;;;X;;;;Ev;RL;WL;RN;WN",
		"2;;Zweite;--;OK;Wechsel;;Anmeldung;2;Bestätigen;NB;LF",
		"3;;Dritte;11002;OK;Sperren;;Sperrung Start;1;Sperren;NB;MSB",
	}, "\n")

	run := func() []byte {
		r, err := record.NewReader(strings.NewReader(src))
		require.NoError(t, err)

		doc, _, err := Build(context.Background(), DefaultOptions(), r.All(), nil)
		require.NoError(t, err)

		data, err := openapi.Marshal(doc)
		require.NoError(t, err)

		return data
	}

	first := run()
	assert.Equal(t, string(first), string(run()))

	doc, err := openapi.Parse(first)
	require.NoError(t, err)

	assert.Equal(t, []string{"/Kapitel_4_Nr.", "/Anmeldung", "/Sperrung_Start"}, doc.Paths.Keys())
	assert.Equal(t, []string{"PI11001", "PI11002"}, doc.Components.Schemas.Keys())
	assert.Equal(t, []openapi.Tag{{Name: "Wechsel"}, {Name: "Sperren"}}, doc.Tags)

	item, _ := doc.Paths.Get("/Anmeldung")
	assert.Contains(t, item.Options.Description, "| → Bestätigen | NB | LF | Zweite | OK | 2 |\n")
}
