// Package responses holds the maid's voice: per-mode reply tables, the
// ambient one-liner pools and the embed builder. Commands stay thin and pull
// their flavor text from here.
package responses

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"

	st "house-maid/internal/storagetypes"
)

const EmbedFooter = "The Maid • Household System"

// Embed colors.
const (
	ColorDefault = 0xf5c2e7
	ColorNight   = 0x2b2d42
	ColorGround  = 0xe56b6f
	ColorMeeting = 0xffd700
	ColorComfort = 0x9d8ac5
)

// table maps personality mode to candidate replies for one command.
type table map[string][]string

var commandResponses = map[string]table{
	"dinner": {
		st.ModePolite:  {"Dinner will be served at 8pm, dear."},
		st.ModeSassy:   {"Dinner at 8pm. Do not be late.", "Dinner is at 8pm. Be on time or be hungry."},
		st.ModeChaotic: {"Dinner at 8pm. I may move it."},
		st.ModeTired:   {"Dinner at 8pm. Please eat quietly."},
	},
	"menu": {
		st.ModePolite:  {"Tonight's menu: something warm and something sweet."},
		st.ModeSassy:   {"Tonight's menu: food you asked for and food you did not."},
		st.ModeChaotic: {"Tonight's menu: surprises."},
		st.ModeTired:   {"Tonight's menu: whatever is fastest."},
	},
	"rules": {
		st.ModePolite:  {"Please mind the family rules. Kindness first."},
		st.ModeSassy:   {"Rules are posted. Read them. Obey them."},
		st.ModeChaotic: {"Rules exist. I might rewrite them."},
		st.ModeTired:   {"Rules are still the rules."},
	},
	"cook": {
		st.ModePolite:  {"I am preparing dinner."},
		st.ModeSassy:   {"Chopping vegetables aggressively."},
		st.ModeChaotic: {"Cooking. Possibly alchemy."},
		st.ModeTired:   {"Cooking. Try not to hover."},
	},
	"snack": {
		st.ModePolite:  {"One snack, dear."},
		st.ModeSassy:   {"One snack. Two if you behave."},
		st.ModeChaotic: {"Snack granted. Chaos priced in."},
		st.ModeTired:   {"Take a snack and sit down."},
	},
	"laundry": {
		st.ModePolite:  {"Laundry is underway."},
		st.ModeSassy:   {"I have found socks where socks should never be."},
		st.ModeChaotic: {"Laundry is a mystery and I am the detective."},
		st.ModeTired:   {"Laundry is in progress. Again."},
	},
	"fold": {
		st.ModePolite:  {"Folding laundry with care."},
		st.ModeSassy:   {"Folding laundry. Someone owns too many hoodies."},
		st.ModeChaotic: {"Folding laundry into strange geometry."},
		st.ModeTired:   {"Folding. Please put things away."},
	},
	"chores": {
		st.ModePolite:  {"Chores assigned. Thank you."},
		st.ModeSassy:   {"Chores assigned. Complaining increases difficulty."},
		st.ModeChaotic: {"Chores assigned by fate."},
		st.ModeTired:   {"Chores assigned. Be quick."},
	},
	"bedtime": {
		st.ModePolite:  {"It is bedtime. Rest well."},
		st.ModeSassy:   {"It is bedtime. Yes, even for the adults."},
		st.ModeChaotic: {"Bedtime. I am locking the lights in my mind."},
		st.ModeTired:   {"Bedtime. Please."},
	},
	"wake": {
		st.ModePolite:  {"Good morning. Rise and shine."},
		st.ModeSassy:   {"Wake up. The sun is out and I am not whispering."},
		st.ModeChaotic: {"Wake up. I have hidden the remote."},
		st.ModeTired:   {"Wake up. Let us be calm."},
	},
	"routine": {
		st.ModePolite:  {"Teeth brushed. Pajamas on. Cozy."},
		st.ModeSassy:   {"Teeth brushed. Pajamas on. Attitude adjusted."},
		st.ModeChaotic: {"Routine complete. Chaos pending."},
		st.ModeTired:   {"Routine done. Good."},
	},
	"comfort": {
		st.ModePolite:  {"Sit. Drink this. You do not have to talk."},
		st.ModeSassy:   {"Sit. Drink this. You are safe here."},
		st.ModeChaotic: {"Comfort delivered. Do not argue."},
		st.ModeTired:   {"Sit. I will handle things."},
	},
	"hug": {
		st.ModePolite:  {"The Maid offers a gentle hug."},
		st.ModeSassy:   {"The Maid offers a firm but loving hug."},
		st.ModeChaotic: {"Hug deployed."},
		st.ModeTired:   {"Hug. Breathe."},
	},
	"badday": {
		st.ModePolite:  {"I see. You may rest. I will handle things tonight."},
		st.ModeSassy:   {"Bad day noted. Rest. I will guard the house."},
		st.ModeChaotic: {"Bad day. I am plotting soft blankets."},
		st.ModeTired:   {"Rest. I will manage."},
	},
	"house": {
		st.ModePolite:  {"The house is calm. Laundry humming. Dinner smells good."},
		st.ModeSassy:   {"The house is calm. Try to keep it that way."},
		st.ModeChaotic: {"The house is calm. Suspiciously calm."},
		st.ModeTired:   {"The house is quiet. Finally."},
	},
	"weather": {
		st.ModePolite:  {"The weather calls for warm tea and quiet voices."},
		st.ModeSassy:   {"Rain outside. Perfect excuse to stay in."},
		st.ModeChaotic: {"Weather is moody. Match it."},
		st.ModeTired:   {"Weather is fine. Stay cozy."},
	},
	"homework": {
		st.ModePolite:  {"Sit properly. What subject are we pretending to understand today?"},
		st.ModeSassy:   {"Sit properly, young one. What subject are we pretending to understand today?"},
		st.ModeChaotic: {"Homework time. I have snacks and threats."},
		st.ModeTired:   {"Homework. Quickly."},
	},
	"study": {
		st.ModePolite:  {"Study time. I have laid out your books and a snack."},
		st.ModeSassy:   {"Study time. I have laid out your books and a snack. No escaping."},
		st.ModeChaotic: {"Study time. I am judging your effort."},
		st.ModeTired:   {"Study time. Focus."},
	},
	"help": {
		st.ModePolite:  {"I will proofread... emotionally."},
		st.ModeSassy:   {"I will proofread... emotionally."},
		st.ModeChaotic: {"I will proofread and sigh dramatically."},
		st.ModeTired:   {"I will proofread. Keep it short."},
	},
	"clean": {
		st.ModePolite:  {"The house is tidy. Let us keep it so."},
		st.ModeSassy:   {"Cleaned. Do not ruin it."},
		st.ModeChaotic: {"Cleaned. For now."},
		st.ModeTired:   {"Cleaned. Please."},
	},
}

var commandEmoji = map[string]string{
	"dinner": "🍽️", "menu": "📋", "rules": "📜", "cook": "👩‍🍳", "snack": "🍪",
	"laundry": "🧺", "fold": "👔", "chores": "📝", "bedtime": "🛏️", "wake": "☀️",
	"routine": "🧸", "comfort": "💜", "hug": "🤗", "badday": "🌧️", "house": "🏠",
	"weather": "🌤️", "homework": "📚", "study": "✏️", "help": "🤝", "clean": "✨",
}

// One-liner pools for the ambient message handlers and watchers.
var (
	IdleNudges = []string{
		"Am I dismissed, or are we ignoring each other?",
		"The halls are quiet. Should I ring a bell?",
		"Silence noted. I am still watching.",
	}
	CalmReminders = []string{
		"Gentle reminder: breathe first, respond second.",
		"Let us lower the volume and raise the care.",
	}
	TiredReplies = []string{
		"Sit down. I insist.",
		"Rest. I will handle it.",
	}
	HungryReplies = []string{
		"That explains the attitude.",
		"Kitchen is ready if you behave.",
	}
	BoredReplies = []string{
		"I have ideas. Dangerous ones.",
		"Boredom is a choice. Choose better.",
	}
	Truths = []string{
		"Truth: What small habit makes you feel cozy?",
		"Truth: What is a silly thing you love?",
	}
	TruthsSpicy = []string{
		"Truth: What secret snack do you hide?",
		"Truth: Who in the family is the biggest softie?",
	}
	Dares = []string{
		"Dare: Post your favorite cozy emoji.",
		"Dare: Share a wholesome fact about you.",
	}
	DaresSpicy = []string{
		"Dare: Compliment someone in the chat, dramatically.",
		"Dare: Change your nickname for 10 minutes.",
	}
	Icebreakers = []string{
		"Icebreaker: What is your comfort movie?",
		"Icebreaker: Which room in the house do you claim?",
		"Icebreaker: What snack represents your mood today?",
	}
	Fortunes = []string{
		"You will argue today. Over nothing.",
		"A cozy surprise waits in your near future.",
		"Someone will ask you for help. Say yes.",
	}
	TidyReports = []string{
		"The house sparkles. Please do not undo my work.",
		"Everything is in its place. Try to keep it that way.",
		"I have tidied. The tea is brewing. All is calm.",
	}
)

// Choose returns a random element, or "..." for an empty list.
func Choose(list []string) string {
	if len(list) == 0 {
		return "..."
	}
	return list[rand.Intn(len(list))]
}

// Pick returns a reply for a simple command in the given personality mode.
// Unknown commands get "...", unknown modes fall back to sassy.
func Pick(command, mode string) string {
	entry, ok := commandResponses[command]
	if !ok {
		return "..."
	}
	list, ok := entry[mode]
	if !ok {
		list = entry[st.ModeSassy]
	}
	return Choose(list)
}

// Known reports whether command has a simple response table.
func Known(command string) bool {
	_, ok := commandResponses[command]
	return ok
}

var (
	exclaimRe = regexp.MustCompile(`!+`)
	spacesRe  = regexp.MustCompile(`\s{2,}`)
)

// Soften quiets a reply for night mode: exclamation runs become periods and
// double spaces collapse.
func Soften(text string) string {
	text = exclaimRe.ReplaceAllString(text, ".")
	return spacesRe.ReplaceAllString(text, " ")
}

// Title builds the embed title for a simple command, e.g. "🍪 Snack".
func Title(command string) string {
	emoji, ok := commandEmoji[command]
	if !ok {
		emoji = "🤍"
	}
	return emoji + " " + strings.ToUpper(command[:1]) + command[1:]
}

// MaidEmbed builds the bot's standard embed. Pass 0 for the default color.
func MaidEmbed(title, description string, color int) *discordgo.MessageEmbed {
	if color == 0 {
		color = ColorDefault
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: EmbedFooter},
	}
}
