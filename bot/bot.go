package bot

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"decklab/bot/features/decks"
	"decklab/bot/features/draw"
	"decklab/bot/features/tournament"
	"decklab/events"
	"decklab/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token           string
	GuildID         string
	DefaultHandSize int
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	eventBus *events.Bus

	drawFeature       *draw.Feature
	decksFeature      *decks.Feature
	tournamentFeature *tournament.Feature
}

func New(config Config, cardService service.CardService, deckService service.DeckService, tournamentService service.TournamentService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:            config,
		session:           dg,
		eventBus:          eventBus,
		drawFeature:       draw.NewFeature(deckService, config.DefaultHandSize),
		decksFeature:      decks.NewFeature(deckService, cardService),
		tournamentFeature: tournament.NewFeature(tournamentService),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.Info("Bot connected and commands registered")

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleCommands dispatches slash commands to their feature handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "draw":
		b.drawFeature.HandleCommand(s, i)
	case "deck":
		b.decksFeature.HandleCommand(s, i)
	case "tournament":
		b.tournamentFeature.HandleCommand(s, i)
	}
}
