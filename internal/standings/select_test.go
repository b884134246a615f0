package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCountsKeywordLabelsAndRows(t *testing.T) {
	kw := DefaultKeywords().Score
	tbl := NormalizedTable{
		Columns: []string{"Pos", "Equipo", "PJ", "Fecha", "Puntos"},
		Rows:    genRows(5, 5, "r"),
	}
	assert.Equal(t, 4+5, Score(tbl, kw))
}

func TestScoreCapsRowContribution(t *testing.T) {
	kw := DefaultKeywords().Score
	tbl := NormalizedTable{Columns: []string{"Date"}, Rows: genRows(50, 1, "r")}
	assert.Equal(t, maxRowScore, Score(tbl, kw))
}

func TestScoreIsDeterministic(t *testing.T) {
	kw := DefaultKeywords().Score
	tbl := NormalizedTable{
		Columns: []string{"Rank", "Team", "Points", "Sets"},
		Rows:    genRows(12, 4, "r"),
	}
	first := Score(tbl, kw)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(tbl, kw))
	}
	assert.GreaterOrEqual(t, first, 0)
}

func TestSelectPicksStandingsOverScheduleAndEmpty(t *testing.T) {
	markup := page(
		tableHTML([]string{"Rank", "Team", "Points"}, genRows(14, 3, "s")),
		tableHTML([]string{"Date", "Home", "Away"}, genRows(5, 3, "m")),
		"<table></table>",
	)

	best, scored, ok := Select(Extract(markup), DefaultKeywords().Score)
	require.True(t, ok)
	assert.Equal(t, 0, best.Index)
	assert.Equal(t, 14, best.Table.Len())
	assert.Equal(t, []string{"Rank", "Team", "Points"}, best.Table.Columns)
	require.Len(t, scored, 2)
	assert.Greater(t, scored[0].Score, scored[1].Score)
}

func TestSelectIgnoresDecorativeTables(t *testing.T) {
	standings := tableHTML([]string{"Pos", "Equipo", "PJ", "PG", "PP", "Puntos"}, genRows(8, 6, "s"))
	layout := `<table><tr><td>menu</td><td>login</td></tr></table>`
	footer := `<table><tr><td>© RFEVB</td></tr></table>`

	for _, markup := range []string{
		page(standings),
		page(layout, standings, footer),
		page(layout, layout, layout, standings),
		page(standings, footer, footer),
	} {
		best, _, ok := Select(Extract(markup), DefaultKeywords().Score)
		require.True(t, ok)
		assert.Equal(t, []string{"Pos", "Equipo", "PJ", "PG", "PP", "Puntos"}, best.Table.Columns)
	}
}

func TestSelectBreaksTiesByPosition(t *testing.T) {
	a := RawTable{Header: [][]HeaderCell{{hc("Team")}}, Rows: [][]string{{"first"}}}
	b := RawTable{Header: [][]HeaderCell{{hc("Team")}}, Rows: [][]string{{"second"}}}

	best, _, ok := Select([]RawTable{a, b}, DefaultKeywords().Score)
	require.True(t, ok)
	assert.Equal(t, 0, best.Index)
	assert.Equal(t, "first", best.Table.Cell(0, 0))
}

func TestSelectNoneSelected(t *testing.T) {
	_, scored, ok := Select(nil, DefaultKeywords().Score)
	assert.False(t, ok)
	assert.Empty(t, scored)

	_, _, ok = Select([]RawTable{{}, {Rows: [][]string{{"", ""}}}}, DefaultKeywords().Score)
	assert.False(t, ok)
}
