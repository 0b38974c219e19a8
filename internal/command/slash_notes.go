package command

import (
	"fmt"
	"strings"

	st "house-maid/internal/storagetypes"

	"github.com/bwmarrin/discordgo"
)

// The maid's notebook: notes about members and remembered quotes.

type NoteCommand struct{}

func (c *NoteCommand) Name() string        { return "note" }
func (c *NoteCommand) Description() string { return "Leave a note about a member." }
func (c *NoteCommand) Category() string    { return "📖 Notes" }
func (c *NoteCommand) RequireHead() bool   { return false }

func (c *NoteCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who the note is about",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "The note",
				Required:    true,
			},
		},
	}
}

func (c *NoteCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	user := optUser(slash.Session, opts, "user")
	text := optString(opts, "text")
	if user == nil {
		respond(slash.Session, slash.Event, "That user is not in this server.")
		return nil
	}
	slash.Storage.AddNote(slash.Event.GuildID, st.Note{
		UserID:   user.ID,
		Text:     text,
		AuthorID: slash.Event.Member.User.ID,
		At:       slash.Clock.Now(),
	})
	respond(slash.Session, slash.Event, "Noted. This will be used against you later.")
	return nil
}

type NotesCommand struct{}

func (c *NotesCommand) Name() string        { return "notes" }
func (c *NotesCommand) Description() string { return "Read the maid's notes." }
func (c *NotesCommand) Category() string    { return "📖 Notes" }
func (c *NotesCommand) RequireHead() bool   { return false }

func (c *NotesCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Filter by member",
			},
		},
	}
}

func (c *NotesCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	userID := ""
	if user := optUser(slash.Session, slash.Event.ApplicationCommandData().Options, "user"); user != nil {
		userID = user.ID
	}
	list := slash.Storage.Notes(slash.Event.GuildID, userID)
	if len(list) == 0 {
		respond(slash.Session, slash.Event, "No notes yet.")
		return nil
	}
	if len(list) > 5 {
		list = list[len(list)-5:]
	}
	var lines []string
	for _, n := range list {
		lines = append(lines, fmt.Sprintf("- <@%s>: %s", n.UserID, n.Text))
	}
	respond(slash.Session, slash.Event, strings.Join(lines, "\n"))
	return nil
}

type RememberCommand struct{}

func (c *RememberCommand) Name() string        { return "remember" }
func (c *RememberCommand) Description() string { return "Make the maid remember something." }
func (c *RememberCommand) Category() string    { return "📖 Notes" }
func (c *RememberCommand) RequireHead() bool   { return false }

func (c *RememberCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "The thing to remember",
				Required:    true,
			},
		},
	}
}

func (c *RememberCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	text := optString(slash.Event.ApplicationCommandData().Options, "text")
	slash.Storage.AddJoke(slash.Event.GuildID, st.Joke{
		Text:     text,
		AuthorID: slash.Event.Member.User.ID,
		At:       slash.Clock.Now(),
	})
	respond(slash.Session, slash.Event, "Noted. This will be used against you later.")
	return nil
}

type RecallCommand struct{}

func (c *RecallCommand) Name() string        { return "recall" }
func (c *RecallCommand) Description() string { return "Recall a remembered thing." }
func (c *RecallCommand) Category() string    { return "📖 Notes" }
func (c *RecallCommand) RequireHead() bool   { return false }

func (c *RecallCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *RecallCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	joke, ok := slash.Storage.RandomJoke(slash.Event.GuildID)
	if !ok {
		respond(slash.Session, slash.Event, "I remember nothing. Yet.")
		return nil
	}
	respond(slash.Session, slash.Event, joke.Text)
	return nil
}

func init() {
	Register(WithGuildOnly(&NoteCommand{}))
	Register(WithGuildOnly(&NotesCommand{}))
	Register(WithGuildOnly(&RememberCommand{}))
	Register(WithGuildOnly(&RecallCommand{}))
}
