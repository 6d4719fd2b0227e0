//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startSearch(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	require.NoError(t, tf.StartWithCities(defaultCities, args...), "Failed to start app")
	require.True(t, tf.SeePlain("citysearch"), "Should show title")
	require.True(t, tf.Ready(len(defaultCities)), "Should load the data set")
	return tf
}

func TestFocusShowsAllCities(t *testing.T) {
	t.Parallel()
	tf := startSearch(t)

	mark := tf.Mark()
	require.NoError(t, tf.Focus())
	for _, c := range defaultCities {
		require.True(t, tf.SinceMark(mark, c.City), "Focusing should list %s", c.City)
	}
}

func TestTypingFiltersSuggestions(t *testing.T) {
	t.Parallel()
	tf := startSearch(t)

	require.NoError(t, tf.Focus())
	mark := tf.Mark()
	require.NoError(t, tf.Type("par"))

	require.True(t, tf.SinceMark(mark, "Parma"), "Should keep Parma")
	require.True(t, tf.SinceMark(mark, "pop. 2,240,621"), "Should show Paris population")
}

func TestNoMatchesMessage(t *testing.T) {
	t.Parallel()
	tf := startSearch(t)

	require.NoError(t, tf.Focus())
	require.NoError(t, tf.Type("zzz"))
	require.True(t, tf.SeePlain("No matches found."), "Should report no matches")
}

func TestEnterOpensDetailAndEscCloses(t *testing.T) {
	t.Parallel()
	tf := startSearch(t)

	require.NoError(t, tf.Focus())
	require.NoError(t, tf.Type("berl"))
	require.True(t, tf.SeePlain("Germany"))

	require.NoError(t, tf.Enter())
	require.NoError(t, tf.WaitForE(func(string) bool {
		plain := tf.SnapshotPlain()
		return strings.Contains(plain, "Selected city") && strings.Contains(plain, "Country: Germany")
	}, 3*time.Second, "Detail modal should open"))

	mark := tf.Mark()
	require.NoError(t, tf.Esc())
	require.True(t, tf.SinceMark(mark, "leave input"), "Closing the modal should return to the input")
}

func TestClickSuggestionOpensDetail(t *testing.T) {
	t.Parallel()
	tf := startSearch(t)

	require.NoError(t, tf.Focus())
	require.NoError(t, tf.Type("oslo"))
	require.True(t, tf.SeePlain("Norway"))

	// first suggestion row sits under the title, blank line and input
	require.NoError(t, tf.Click(6, 4))
	require.True(t, tf.SeePlain("Country: Norway"), "Clicking a row should open the detail")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := startSearch(t)

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SinceMark(mark, "citysearch help"), "Help should open")

	mark = tf.Mark()
	require.NoError(t, tf.Quit())
	require.True(t, tf.SinceMark(mark, "4 cities"), "Should return to the main view after the pager")
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startSearch(t)

	require.NoError(t, tf.Quit())
	if err := tf.WaitExit(1500 * time.Millisecond); err != nil {
		t.Logf("q did not exit: %v; sending Ctrl+C", err)
		require.NoError(t, tf.SendKeys(KeyCtrlC))
		require.NoError(t, tf.WaitExit(time.Second), "Application did not exit")
	}
}

func TestCtrlCExitsWhileTyping(t *testing.T) {
	t.Parallel()
	tf := startSearch(t)

	require.NoError(t, tf.Focus())
	require.NoError(t, tf.Type("pa"))
	require.NoError(t, tf.SendKeys(KeyCtrlC))
	require.NoError(t, tf.WaitExit(2*time.Second), "Ctrl+C should exit from the input")
}

func TestMissingSourceFileStaysSilent(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	require.NoError(t, tf.StartApp("--source-file", tf.workspace+"/absent.json"))
	require.True(t, tf.SeePlain("citysearch"), "Should still start")

	require.NoError(t, tf.Focus())
	require.NoError(t, tf.Type("pa"))
	require.True(t, tf.SeePlain("No matches found."), "Empty store yields no matches")
}
