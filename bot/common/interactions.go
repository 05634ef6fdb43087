package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// InteractionUserID extracts the invoking user's Discord ID, whether the
// command came from a guild or a DM.
func InteractionUserID(i *discordgo.InteractionCreate) (int64, error) {
	var raw string
	if i.Member != nil && i.Member.User != nil {
		raw = i.Member.User.ID
	} else if i.User != nil {
		raw = i.User.ID
	}
	if raw == "" {
		return 0, fmt.Errorf("interaction has no user")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse user id %q: %w", raw, err)
	}
	return id, nil
}
