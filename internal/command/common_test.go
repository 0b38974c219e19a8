package command

import (
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"house-maid/internal/storage"
)

func newSlashContext(t *testing.T, guildID string) *SlashContext {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return &SlashContext{
		Event:   &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{GuildID: guildID}},
		Storage: store,
	}
}

func TestDisplayFor(t *testing.T) {
	ctx := newSlashContext(t, "g1")

	require.Equal(t, "dear", displayFor(ctx, "", "ignored"))
	require.Equal(t, "Alex", displayFor(ctx, "u1", "Alex"))

	ctx.Storage.SetFamilyRole("g1", "Mom", "u1")
	require.Equal(t, "Head of Household", displayFor(ctx, "u1", "Alex"))

	ctx.Storage.SetFamilyRole("g1", "son", "u2")
	require.Equal(t, "Young Master", displayFor(ctx, "u2", "Sam"))

	ctx.Storage.SetFamilyRole("g1", "daughter", "u3")
	require.Equal(t, "Young Miss", displayFor(ctx, "u3", "Kim"))

	ctx.Storage.SetFamilyRole("g1", "butler", "u4")
	require.Equal(t, "Jeeves", displayFor(ctx, "u4", "Jeeves"))

	// An explicit address beats the role-derived title.
	ctx.Storage.SetAddress("g1", "u1", "Madam")
	require.Equal(t, "Madam", displayFor(ctx, "u1", "Alex"))
}

func TestOptionHelpers(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "text", Type: discordgo.ApplicationCommandOptionString, Value: "hello"},
		{Name: "minutes", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(15)},
		{Name: "spicy", Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
	}

	require.Equal(t, "hello", optString(opts, "text"))
	require.Equal(t, "", optString(opts, "missing"))

	minutes, ok := optInt(opts, "minutes")
	require.True(t, ok)
	require.Equal(t, 15, minutes)
	_, ok = optInt(opts, "missing")
	require.False(t, ok)

	spicy, ok := optBool(opts, "spicy")
	require.True(t, ok)
	require.True(t, spicy)
	_, ok = optBool(opts, "missing")
	require.False(t, ok)
}

func TestRegistryCoversCommandSurface(t *testing.T) {
	for _, name := range []string{
		"maid", "setannounce", "setrole", "roles", "address", "whoami",
		"note", "notes", "remember", "recall",
		"setcurfew", "curfew",
		"remind", "remindme", "listreminders", "delreminder",
		"setbirthday", "setanniversary",
		"addevent", "addweekly", "inittraditions", "listevents", "delevent",
		"reward", "ground", "favor", "household", "checkin",
		"familymeeting", "warnmute", "tea", "tuckin", "comfort", "tidy",
		"sl", "roll", "truth", "dare", "icebreaker", "fortune",
		"dinner", "snack", "bedtime", "clean",
	} {
		cmd, ok := Get(name)
		require.True(t, ok, "command %q must be registered", name)
		require.NotNil(t, cmd.(SlashProvider).SlashDefinition())
	}
}
