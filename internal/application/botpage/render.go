package botpage

import (
	"fmt"
	"go-botadmin/internal/domain/types/slacktypes"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

const (
	defaultConfigName = "Default Configuration"
	separator         = "----------------------------------------"
)

func Render(w io.Writer, view View) error {
	var b strings.Builder

	switch view.State {
	case StateLoading:
		b.WriteString("Loading...\n")
	case StateError:
		fmt.Fprintf(&b, "%s\n%s\n", view.ErrorTitle, view.ErrorMsg)
	case StateContent:
		renderContent(&b, view)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func renderContent(b *strings.Builder, view View) {
	bot := view.Bot

	fmt.Fprintf(b, "<- Back (%s)\n\n", BackRoute)
	fmt.Fprintf(b, "Slack Bot: %s (#%d)\n", bot.Name, bot.ID)

	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Enabled:\t%s\n", yesNo(bot.Enabled))
	fmt.Fprintf(tw, "  Bot token:\t%s\n", MaskToken(bot.BotToken))
	fmt.Fprintf(tw, "  App token:\t%s\n", MaskToken(bot.AppToken))

	userToken := "(not set)"
	if bot.UserToken != nil && *bot.UserToken != "" {
		userToken = MaskToken(*bot.UserToken)
	}

	fmt.Fprintf(tw, "  User token:\t%s\n", userToken)
	_ = tw.Flush()

	b.WriteString(separator + "\n")
	b.WriteString("Channel Configs\n")

	configs := SortChannelConfigs(view.ChannelConfigs)
	if len(configs) == 0 {
		b.WriteString("  No channel configs.\n")

		return
	}

	tw = tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tCHANNEL\tASSISTANT\tAUTO FILTERS\tSTATUS")

	for _, config := range configs {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\n",
			config.ID,
			channelLabel(config),
			personaLabel(config.Persona),
			yesNo(config.EnableAutoFilters),
			statusLabel(config.ChannelConfig.Disabled))
	}

	_ = tw.Flush()
}

// SortChannelConfigs returns a copy with the default config first and the
// rest ordered by channel name, then id.
func SortChannelConfigs(configs []slacktypes.SlackChannelConfig) []slacktypes.SlackChannelConfig {
	sorted := append([]slacktypes.SlackChannelConfig(nil), configs...)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsDefault != b.IsDefault {
			return a.IsDefault
		}

		nameA := strings.ToLower(a.ChannelConfig.ChannelName)
		nameB := strings.ToLower(b.ChannelConfig.ChannelName)

		if nameA != nameB {
			return nameA < nameB
		}

		return a.ID < b.ID
	})

	return sorted
}

// MaskToken keeps only enough of a token to tell tokens apart.
func MaskToken(token string) string {
	if token == "" {
		return "(not set)"
	}

	if len(token) <= 12 {
		return strings.Repeat("*", len(token))
	}

	return token[:4] + strings.Repeat("*", 8) + token[len(token)-4:]
}

func channelLabel(config slacktypes.SlackChannelConfig) string {
	if config.IsDefault {
		return defaultConfigName
	}

	return "#" + config.ChannelConfig.ChannelName
}

func personaLabel(persona *slacktypes.Persona) string {
	if persona == nil || persona.Name == "" {
		return "-"
	}

	return persona.Name
}

func statusLabel(disabled bool) string {
	if disabled {
		return "Disabled"
	}

	return "Enabled"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
