package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	GuildID      string `env:"GUILD_ID"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"data.json"`

	// Discord role names the household maps onto.
	RoleHead     string `env:"ROLE_HEAD" envDefault:"Head of Household"`
	RoleKids     string `env:"ROLE_KIDS" envDefault:"Kids"`
	RoleSiblings string `env:"ROLE_SIBLINGS" envDefault:"Siblings"`
	RoleKin      string `env:"ROLE_KIN" envDefault:"Kin"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
