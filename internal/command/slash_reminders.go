package command

import (
	"fmt"
	"strings"
	"time"

	"house-maid/internal/schedule"
	st "house-maid/internal/storagetypes"

	"github.com/bwmarrin/discordgo"
)

type RemindCommand struct{}

func (c *RemindCommand) Name() string        { return "remind" }
func (c *RemindCommand) Description() string { return "Set a reminder for a specific time." }
func (c *RemindCommand) Category() string    { return "🧺 Reminders" }
func (c *RemindCommand) RequireHead() bool   { return false }

func (c *RemindCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "What to remind about",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "datetime",
				Description: "When, YYYY-MM-DD HH:MM (24h)",
				Required:    true,
			},
		},
	}
}

func (c *RemindCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	text := optString(opts, "text")
	when, err := schedule.ParseDateTime(optString(opts, "datetime"))
	if err != nil {
		respond(slash.Session, slash.Event, "Provide datetime as YYYY-MM-DD HH:MM (24h).")
		return nil
	}
	id := slash.Storage.AddReminder(slash.Event.GuildID, st.Reminder{
		ChannelID: slash.Event.ChannelID,
		UserID:    slash.Event.Member.User.ID,
		Text:      "📅 Reminder: " + text,
		Time:      when,
	})
	respond(slash.Session, slash.Event, fmt.Sprintf("Reminder set (#%d).", id))
	return nil
}

type RemindMeCommand struct{}

func (c *RemindMeCommand) Name() string        { return "remindme" }
func (c *RemindMeCommand) Description() string { return "Set a reminder N minutes from now." }
func (c *RemindMeCommand) Category() string    { return "🧺 Reminders" }
func (c *RemindMeCommand) RequireHead() bool   { return false }

func (c *RemindMeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "minutes",
				Description: "Minutes from now",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "What to remind about",
				Required:    true,
			},
		},
	}
}

func (c *RemindMeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	minutes, _ := optInt(opts, "minutes")
	text := optString(opts, "text")
	if minutes <= 0 {
		respond(slash.Session, slash.Event, "Provide a positive number of minutes.")
		return nil
	}
	id := slash.Storage.AddReminder(slash.Event.GuildID, st.Reminder{
		ChannelID: slash.Event.ChannelID,
		UserID:    slash.Event.Member.User.ID,
		Text:      "📅 Reminder: " + text,
		Time:      slash.Clock.Now().Add(time.Duration(minutes) * time.Minute),
	})
	respond(slash.Session, slash.Event, fmt.Sprintf("Reminder set (#%d).", id))
	return nil
}

type ListRemindersCommand struct{}

func (c *ListRemindersCommand) Name() string        { return "listreminders" }
func (c *ListRemindersCommand) Description() string { return "List pending reminders." }
func (c *ListRemindersCommand) Category() string    { return "🧺 Reminders" }
func (c *ListRemindersCommand) RequireHead() bool   { return false }

func (c *ListRemindersCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ListRemindersCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	reminders := slash.Storage.Reminders(slash.Event.GuildID)
	if len(reminders) == 0 {
		respond(slash.Session, slash.Event, "No reminders set.")
		return nil
	}
	if len(reminders) > 10 {
		reminders = reminders[:10]
	}
	var lines []string
	for _, r := range reminders {
		lines = append(lines, fmt.Sprintf("#%d at %s: %s", r.ID, r.Time.Format("2006-01-02 15:04"), r.Text))
	}
	respond(slash.Session, slash.Event, strings.Join(lines, "\n"))
	return nil
}

type DelReminderCommand struct{}

func (c *DelReminderCommand) Name() string        { return "delreminder" }
func (c *DelReminderCommand) Description() string { return "Delete a reminder by id." }
func (c *DelReminderCommand) Category() string    { return "🧺 Reminders" }
func (c *DelReminderCommand) RequireHead() bool   { return false }

func (c *DelReminderCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Reminder id",
				Required:    true,
			},
		},
	}
}

func (c *DelReminderCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	id, _ := optInt(slash.Event.ApplicationCommandData().Options, "id")
	if slash.Storage.DeleteReminder(slash.Event.GuildID, id) {
		respond(slash.Session, slash.Event, "Reminder deleted.")
	} else {
		respond(slash.Session, slash.Event, "No reminder found.")
	}
	return nil
}

// SetDateCommand covers both birthdays and anniversaries: a yearly reminder
// seeded at 09:00 on the given date, pushed a year out when the date already
// passed.
type SetDateCommand struct {
	name        string
	description string
	textFor     func(userID string) string
}

func (c *SetDateCommand) Name() string        { return c.name }
func (c *SetDateCommand) Description() string { return c.description }
func (c *SetDateCommand) Category() string    { return "📅 Events" }
func (c *SetDateCommand) RequireHead() bool   { return false }

func (c *SetDateCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Whose date",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "date",
				Description: "Date, YYYY-MM-DD",
				Required:    true,
			},
		},
	}
}

func (c *SetDateCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	user := optUser(slash.Session, opts, "user")
	if user == nil {
		respond(slash.Session, slash.Event, "That user is not in this server.")
		return nil
	}
	when, err := schedule.ParseDateTime(optString(opts, "date") + " 09:00")
	if err != nil {
		respond(slash.Session, slash.Event, "Provide a valid date YYYY-MM-DD.")
		return nil
	}
	when = schedule.EnsureFuture(slash.Clock.Now(), when)
	slash.Storage.AddReminder(slash.Event.GuildID, st.Reminder{
		ChannelID: slash.Event.ChannelID,
		UserID:    user.ID,
		Text:      c.textFor(user.ID),
		Time:      when,
		Repeat:    st.RepeatYearly,
	})
	respond(slash.Session, slash.Event, "Date saved.")
	return nil
}

func init() {
	Register(WithGuildOnly(&RemindCommand{}))
	Register(WithGuildOnly(&RemindMeCommand{}))
	Register(WithGuildOnly(&ListRemindersCommand{}))
	Register(WithGuildOnly(&DelReminderCommand{}))
	Register(WithGuildOnly(&SetDateCommand{
		name:        "setbirthday",
		description: "Save a member's birthday.",
		textFor: func(userID string) string {
			return fmt.Sprintf("🎂 Happy birthday <@%s>!", userID)
		},
	}))
	Register(WithGuildOnly(&SetDateCommand{
		name:        "setanniversary",
		description: "Save a member's anniversary.",
		textFor: func(userID string) string {
			return fmt.Sprintf("💞 Happy anniversary, <@%s>!", userID)
		},
	}))
}
