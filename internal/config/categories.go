package config

// CategoryWeights orders command categories in help output.
var CategoryWeights = map[string]int{
	"🏠 Household":    0,
	"🧺 Reminders":    10,
	"📅 Events":       20,
	"📖 Notes":        30,
	"📊 Favor":        40,
	"🎲 Games":        50,
	"🫖 Care":         60,
	"⚙️ Settings":    70,
}
