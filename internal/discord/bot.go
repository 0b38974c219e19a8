package discord

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"house-maid/internal/command"
	"house-maid/internal/config"
	"house-maid/internal/storage"
	"house-maid/internal/watch"

	"github.com/bwmarrin/discordgo"
	"github.com/jmhodges/clock"
)

// Bot is the Discord runtime: session, command registration, watchers and
// the presence rotation.
type Bot struct {
	dg        *discordgo.Session
	storage   *storage.Storage
	cfg       *config.Config
	clk       clock.Clock
	messenger *Messenger
	watcher   *watch.Watcher
	startOnce sync.Once
	ctx       context.Context
}

func NewBot(cfg *config.Config, store *storage.Storage) *Bot {
	return &Bot{
		cfg:     cfg,
		storage: store,
		clk:     clock.New(),
	}
}

func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg
	b.ctx = ctx
	b.messenger = NewMessenger(dg)

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	if b.watcher != nil {
		b.watcher.Stop()
	}
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s", r.User.Username)

	if err := b.registerSlashCommands(s); err != nil {
		log.Println("[ERR] Failed to register slash commands:", err)
	}

	b.startOnce.Do(func() {
		b.watcher = watch.New(b.storage, b.messenger, b.clk, watch.Config{
			KidsRoleName: b.cfg.RoleKids,
		})
		if err := b.watcher.Start(); err != nil {
			log.Println("[ERR] Failed to start watchers:", err)
		}
		go b.rotatePresence(s)
	})
}

func (b *Bot) registerSlashCommands(s *discordgo.Session) error {
	cmds := command.All()
	// Stable order: category weight first, then name, so re-registration
	// does not reshuffle the command list.
	sort.Slice(cmds, func(i, j int) bool {
		wi, wj := config.CategoryWeights[cmds[i].Category()], config.CategoryWeights[cmds[j].Category()]
		if wi != wj {
			return wi < wj
		}
		return cmds[i].Name() < cmds[j].Name()
	})

	var defs []*discordgo.ApplicationCommand
	for _, cmd := range cmds {
		if provider, ok := cmd.(command.SlashProvider); ok {
			if def := provider.SlashDefinition(); def != nil {
				defs = append(defs, def)
			}
		}
	}
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, b.cfg.GuildID, defs)
	if err != nil {
		return err
	}
	log.Printf("[INFO] Registered %d slash commands", len(defs))
	return nil
}

// rotatePresence cycles the bot's custom status through the stored rotation.
func (b *Bot) rotatePresence(s *discordgo.Session) {
	interval := time.Duration(b.storage.StatusIntervalMinutes()) * time.Minute
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	index := 0
	for {
		select {
		case <-b.ctx.Done():
			return
		case <-ticker.C:
			statuses := b.storage.Statuses()
			if len(statuses) == 0 {
				continue
			}
			status := statuses[index%len(statuses)]
			index++
			if err := s.UpdateCustomStatus(status); err != nil {
				log.Println("[WARN] Failed to update presence:", err)
			}
		}
	}
}
