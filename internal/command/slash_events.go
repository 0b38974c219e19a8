package command

import (
	"fmt"
	"regexp"
	"strings"

	"house-maid/internal/schedule"
	st "house-maid/internal/storagetypes"

	"github.com/bwmarrin/discordgo"
)

// Events ride on the reminder engine: one-shot events, weekly traditions and
// the default tradition seeder.

type AddEventCommand struct{}

func (c *AddEventCommand) Name() string        { return "addevent" }
func (c *AddEventCommand) Description() string { return "Schedule a one-time event." }
func (c *AddEventCommand) Category() string    { return "📅 Events" }
func (c *AddEventCommand) RequireHead() bool   { return false }

func (c *AddEventCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Event name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "date",
				Description: "Date, YYYY-MM-DD",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Time, HH:MM (24h)",
				Required:    true,
			},
		},
	}
}

func (c *AddEventCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	name := optString(opts, "name")
	when, err := schedule.ParseDateTime(optString(opts, "date") + " " + optString(opts, "time"))
	if err != nil {
		respond(slash.Session, slash.Event, "Provide date/time as YYYY-MM-DD and HH:MM (24h).")
		return nil
	}
	id := slash.Storage.AddReminder(slash.Event.GuildID, st.Reminder{
		ChannelID: slash.Event.ChannelID,
		UserID:    slash.Event.Member.User.ID,
		Text:      fmt.Sprintf("🎉 Event: %s is starting now.", name),
		Time:      when,
	})
	respond(slash.Session, slash.Event, fmt.Sprintf("Event scheduled (#%d).", id))
	return nil
}

type AddWeeklyCommand struct{}

func (c *AddWeeklyCommand) Name() string        { return "addweekly" }
func (c *AddWeeklyCommand) Description() string { return "Schedule a weekly tradition." }
func (c *AddWeeklyCommand) Category() string    { return "📅 Events" }
func (c *AddWeeklyCommand) RequireHead() bool   { return false }

func (c *AddWeeklyCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Tradition name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "day",
				Description: "Weekday (Mon, Tue...)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Time, HH:MM (24h)",
				Required:    true,
			},
		},
	}
}

func (c *AddWeeklyCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	opts := slash.Event.ApplicationCommandData().Options
	name := optString(opts, "name")
	tod, err := schedule.ParseTimeOfDay(optString(opts, "time"))
	if err != nil {
		respond(slash.Session, slash.Event, "Provide time as HH:MM (24h).")
		return nil
	}
	next, err := schedule.NextWeeklyOccurrence(slash.Clock.Now(), optString(opts, "day"), tod)
	if err != nil {
		respond(slash.Session, slash.Event, "Invalid day name.")
		return nil
	}
	id := slash.Storage.AddReminder(slash.Event.GuildID, st.Reminder{
		ChannelID: slash.Event.ChannelID,
		UserID:    slash.Event.Member.User.ID,
		Text:      fmt.Sprintf("🎉 Weekly tradition: %s starts now.", name),
		Time:      next,
		Repeat:    st.RepeatWeekly,
	})
	respond(slash.Session, slash.Event, fmt.Sprintf("Weekly event scheduled (#%d).", id))
	return nil
}

type InitTraditionsCommand struct{}

func (c *InitTraditionsCommand) Name() string        { return "inittraditions" }
func (c *InitTraditionsCommand) Description() string { return "Seed the default weekly traditions." }
func (c *InitTraditionsCommand) Category() string    { return "📅 Events" }
func (c *InitTraditionsCommand) RequireHead() bool   { return true }

func (c *InitTraditionsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *InitTraditionsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	defaults := []struct {
		name string
		day  string
		time string
	}{
		{"Family Friday", "Fri", "20:00"},
		{"Movie Night", "Sat", "19:00"},
		{"SL RP Night", "Sun", "21:00"},
	}
	var created []string
	for _, item := range defaults {
		tod, err := schedule.ParseTimeOfDay(item.time)
		if err != nil {
			continue
		}
		next, err := schedule.NextWeeklyOccurrence(slash.Clock.Now(), item.day, tod)
		if err != nil {
			continue
		}
		slash.Storage.AddReminder(slash.Event.GuildID, st.Reminder{
			ChannelID: slash.Event.ChannelID,
			UserID:    slash.Event.Member.User.ID,
			Text:      fmt.Sprintf("🎉 Weekly tradition: %s starts now.", item.name),
			Time:      next,
			Repeat:    st.RepeatWeekly,
		})
		created = append(created, item.name)
	}
	if len(created) == 0 {
		respond(slash.Session, slash.Event, "No traditions added.")
		return nil
	}
	respond(slash.Session, slash.Event, "Traditions added: "+strings.Join(created, ", "))
	return nil
}

var eventTextRe = regexp.MustCompile(`(?i)Event|Weekly tradition`)

type ListEventsCommand struct{}

func (c *ListEventsCommand) Name() string        { return "listevents" }
func (c *ListEventsCommand) Description() string { return "List scheduled events." }
func (c *ListEventsCommand) Category() string    { return "📅 Events" }
func (c *ListEventsCommand) RequireHead() bool   { return false }

func (c *ListEventsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ListEventsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	var lines []string
	for _, r := range slash.Storage.Reminders(slash.Event.GuildID) {
		if !eventTextRe.MatchString(r.Text) {
			continue
		}
		lines = append(lines, fmt.Sprintf("#%d at %s: %s", r.ID, r.Time.Format("2006-01-02 15:04"), r.Text))
		if len(lines) == 10 {
			break
		}
	}
	if len(lines) == 0 {
		respond(slash.Session, slash.Event, "No events scheduled.")
		return nil
	}
	respond(slash.Session, slash.Event, strings.Join(lines, "\n"))
	return nil
}

type DelEventCommand struct{}

func (c *DelEventCommand) Name() string        { return "delevent" }
func (c *DelEventCommand) Description() string { return "Delete an event by id." }
func (c *DelEventCommand) Category() string    { return "📅 Events" }
func (c *DelEventCommand) RequireHead() bool   { return true }

func (c *DelEventCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Event id",
				Required:    true,
			},
		},
	}
}

func (c *DelEventCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	id, _ := optInt(slash.Event.ApplicationCommandData().Options, "id")
	if slash.Storage.DeleteReminder(slash.Event.GuildID, id) {
		respond(slash.Session, slash.Event, "Event deleted.")
	} else {
		respond(slash.Session, slash.Event, "No event found.")
	}
	return nil
}

func init() {
	Register(WithGuildOnly(&AddEventCommand{}))
	Register(WithGuildOnly(&AddWeeklyCommand{}))
	Register(WithGuildOnly(WithHeadOnly(&InitTraditionsCommand{})))
	Register(WithGuildOnly(&ListEventsCommand{}))
	Register(WithGuildOnly(WithHeadOnly(&DelEventCommand{})))
}
