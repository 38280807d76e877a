package slacktypes

import "go-botadmin/internal/domain/types/apitypes"

type SlackBot struct {
	ID                  int                     `json:"id"`
	Name                string                  `json:"name"`
	Enabled             bool                    `json:"enabled"`
	ConfigsCount        int                     `json:"configs_count"`
	SlackChannelConfigs []SlackChannelConfigRef `json:"slack_channel_configs"`
	BotToken            string                  `json:"bot_token"`
	AppToken            string                  `json:"app_token"`
	UserToken           *string                 `json:"user_token,omitempty"`
}

type SlackChannelConfigRef struct {
	ID            int           `json:"id"`
	ChannelConfig ChannelConfig `json:"channel_config"`
}

type Persona struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ChannelConfig struct {
	ChannelName            string   `json:"channel_name"`
	RespondTagOnly         bool     `json:"respond_tag_only,omitempty"`
	RespondToBots          bool     `json:"respond_to_bots,omitempty"`
	IsEphemeral            bool     `json:"is_ephemeral,omitempty"`
	ShowContinueInWebUI    bool     `json:"show_continue_in_web_ui,omitempty"`
	RespondMemberGroupList []string `json:"respond_member_group_list,omitempty"`
	AnswerFilters          []string `json:"answer_filters,omitempty"`
	FollowUpTags           []string `json:"follow_up_tags,omitempty"`
	Disabled               bool     `json:"disabled,omitempty"`
}

type SlackChannelConfig struct {
	ID                int           `json:"id"`
	SlackBotID        int           `json:"slack_bot_id"`
	PersonaID         *int          `json:"persona_id"`
	Persona           *Persona      `json:"persona"`
	ChannelConfig     ChannelConfig `json:"channel_config"`
	EnableAutoFilters bool          `json:"enable_auto_filters"`
	IsDefault         bool          `json:"is_default"`
}

// UpdateSlackBotRequest is a partial update; nil fields are left unchanged
// by the server.
type UpdateSlackBotRequest struct {
	Name      *string `json:"name,omitempty"`
	Enabled   *bool   `json:"enabled,omitempty"`
	BotToken  *string `json:"bot_token,omitempty"`
	AppToken  *string `json:"app_token,omitempty"`
	UserToken *string `json:"user_token,omitempty"`
}

// FetchErrorInfo is the JSON body the admin API returns on failure.
type FetchErrorInfo struct {
	Message string          `json:"message,omitempty"`
	Detail  apitypes.Detail `json:"detail"`
}
