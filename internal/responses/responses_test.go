package responses

import (
	"testing"

	"github.com/stretchr/testify/require"

	st "house-maid/internal/storagetypes"
)

func TestPick(t *testing.T) {
	require.Equal(t, "Dinner at 8pm. Please eat quietly.", Pick("dinner", st.ModeTired))
	require.Equal(t, "Tonight's menu: surprises.", Pick("menu", st.ModeChaotic))

	// Unknown mode falls back to the sassy pool.
	got := Pick("cook", "grumpy")
	require.Equal(t, "Chopping vegetables aggressively.", got)

	// Unknown command gets the shrug.
	require.Equal(t, "...", Pick("juggle", st.ModePolite))
}

func TestSoften(t *testing.T) {
	require.Equal(t, "Wake up. Now.", Soften("Wake up!!! Now!"))
	require.Equal(t, "a b", Soften("a   b"))
}

func TestChoose(t *testing.T) {
	require.Equal(t, "...", Choose(nil))
	require.Equal(t, "only", Choose([]string{"only"}))

	pool := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		require.Contains(t, pool, Choose(pool))
	}
}

func TestTitle(t *testing.T) {
	require.Equal(t, "🍪 Snack", Title("snack"))
	require.Equal(t, "🤍 Mystery", Title("mystery"))
}

func TestMaidEmbed(t *testing.T) {
	embed := MaidEmbed("🍵 Tea Time", "Sit.", 0)
	require.Equal(t, ColorDefault, embed.Color)
	require.Equal(t, EmbedFooter, embed.Footer.Text)

	night := MaidEmbed("🕰 Curfew Notice", "Sleep.", ColorNight)
	require.Equal(t, ColorNight, night.Color)
}
